package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/franchise-api/backend/internal/model"
)

func (s *Store) FindUserByID(ctx context.Context, id string) (*model.UserAccount, error) {
	return findOne[model.UserAccount](ctx, s.col(ColUsers), bson.D{{Key: "_id", Value: id}})
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*model.UserAccount, error) {
	return findOne[model.UserAccount](ctx, s.col(ColUsers),
		bson.D{{Key: "username", Value: username}},
		options.FindOne().SetCollation(&caseInsensitive))
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*model.UserAccount, error) {
	return findOne[model.UserAccount](ctx, s.col(ColUsers),
		bson.D{{Key: "email", Value: email}},
		options.FindOne().SetCollation(&caseInsensitive))
}

func (s *Store) FindUserByResetToken(ctx context.Context, token string) (*model.UserAccount, error) {
	return findOne[model.UserAccount](ctx, s.col(ColUsers), bson.D{{Key: "reset_token", Value: token}})
}

func (s *Store) FindAllUsers(ctx context.Context) ([]*model.UserAccount, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return findMany[model.UserAccount](ctx, s.col(ColUsers), bson.D{}, opts)
}

func (s *Store) SaveUser(ctx context.Context, account *model.UserAccount) error {
	account.UpdatedAt = time.Now().UTC()
	return upsertByID(ctx, s.col(ColUsers), account.ID, account)
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return deleteByID(ctx, s.col(ColUsers), id)
}
