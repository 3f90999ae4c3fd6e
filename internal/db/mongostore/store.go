// Package mongostore implements the persistence interfaces on MongoDB.
//
// Accounts and franchise aggregates are stored as documents via the model
// structs' bson tags. Collection names and indexes are managed in
// ensureIndexes; username, email and franchise name uniqueness uses a
// strength-2 collation so lookups stay case-insensitive.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/franchise-api/backend/internal/db"
)

const (
	ColUsers      = "users"
	ColFranchises = "franchises"
)

// caseInsensitive is the collation applied to unique indexes and lookups on
// username, email and franchise name.
var caseInsensitive = options.Collation{Locale: "en", Strength: 2}

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongostore: ping failed: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.client.Disconnect(ctx)
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// EnsureSchema creates the indexes the stores rely on.
func (s *Store) EnsureSchema(ctx context.Context) error {
	type idx struct {
		col     string
		keys    bson.D
		unique  bool
		collate bool
	}

	indexes := []idx{
		{ColUsers, bson.D{{Key: "username", Value: 1}}, true, true},
		{ColUsers, bson.D{{Key: "email", Value: 1}}, true, true},
		{ColUsers, bson.D{{Key: "reset_token", Value: 1}}, false, false},
		{ColFranchises, bson.D{{Key: "name", Value: 1}}, true, true},
	}

	for _, i := range indexes {
		idxModel := mongo.IndexModel{Keys: i.keys}
		opts := options.Index()
		if i.unique {
			opts = opts.SetUnique(true)
		}
		if i.collate {
			opts = opts.SetCollation(&caseInsensitive)
		}
		idxModel.Options = opts
		if _, err := s.col(i.col).Indexes().CreateOne(ctx, idxModel); err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
	}
	return nil
}

// wrapError translates driver errors into store errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return db.ErrNotFound
	}
	return err
}
