package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/franchise-api/backend/internal/model"
)

func (s *Store) FindFranchiseByID(ctx context.Context, id string) (*model.Franchise, error) {
	return findOne[model.Franchise](ctx, s.col(ColFranchises), bson.D{{Key: "_id", Value: id}})
}

func (s *Store) FindFranchiseByName(ctx context.Context, name string) (*model.Franchise, error) {
	return findOne[model.Franchise](ctx, s.col(ColFranchises),
		bson.D{{Key: "name", Value: name}},
		options.FindOne().SetCollation(&caseInsensitive))
}

func (s *Store) FindAllFranchises(ctx context.Context) ([]*model.Franchise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return findMany[model.Franchise](ctx, s.col(ColFranchises), bson.D{}, opts)
}

func (s *Store) SaveFranchise(ctx context.Context, franchise *model.Franchise) error {
	if franchise.Branches == nil {
		franchise.Branches = []model.Branch{}
	}
	return upsertByID(ctx, s.col(ColFranchises), franchise.ID, franchise)
}

func (s *Store) DeleteFranchise(ctx context.Context, id string) error {
	return deleteByID(ctx, s.col(ColFranchises), id)
}
