package db

import (
	"context"
	"errors"

	"github.com/franchise-api/backend/internal/model"
)

// ErrNotFound is returned by every store when a lookup matches nothing.
// Driver-specific not-found errors (pgx.ErrNoRows, mongo.ErrNoDocuments) are
// translated before they leave the package.
var ErrNotFound = errors.New("db: not found")

// UserStore holds account records. Username and email lookups are
// case-insensitive; Save is an upsert keyed by account ID.
type UserStore interface {
	FindUserByID(ctx context.Context, id string) (*model.UserAccount, error)
	FindUserByUsername(ctx context.Context, username string) (*model.UserAccount, error)
	FindUserByEmail(ctx context.Context, email string) (*model.UserAccount, error)
	FindUserByResetToken(ctx context.Context, token string) (*model.UserAccount, error)
	FindAllUsers(ctx context.Context) ([]*model.UserAccount, error)
	SaveUser(ctx context.Context, account *model.UserAccount) error
	DeleteUser(ctx context.Context, id string) error
}

// FranchiseStore holds franchise aggregates. The name lookup is
// case-insensitive; Save writes the whole aggregate.
type FranchiseStore interface {
	FindFranchiseByID(ctx context.Context, id string) (*model.Franchise, error)
	FindFranchiseByName(ctx context.Context, name string) (*model.Franchise, error)
	FindAllFranchises(ctx context.Context) ([]*model.Franchise, error)
	SaveFranchise(ctx context.Context, franchise *model.Franchise) error
	DeleteFranchise(ctx context.Context, id string) error
}

// Store is the full persistence surface a backend driver provides.
type Store interface {
	UserStore
	FranchiseStore
	EnsureSchema(ctx context.Context) error
	Close()
}

// IsNotFound reports whether err is a store not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
