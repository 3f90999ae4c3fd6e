package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/franchise-api/backend/internal/model"
)

// The franchise aggregate keeps branches (and their products) as a single
// JSONB document, so reads and writes always cover the whole aggregate.

func (db *Postgres) FindFranchiseByID(ctx context.Context, id string) (*model.Franchise, error) {
	return db.queryFranchise(ctx, `SELECT id, name, active, branches FROM franchises WHERE id = $1`, id)
}

func (db *Postgres) FindFranchiseByName(ctx context.Context, name string) (*model.Franchise, error) {
	return db.queryFranchise(ctx, `SELECT id, name, active, branches FROM franchises WHERE LOWER(name) = LOWER($1)`, name)
}

func (db *Postgres) FindAllFranchises(ctx context.Context) ([]*model.Franchise, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, name, active, branches FROM franchises ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	franchises := []*model.Franchise{}
	for rows.Next() {
		franchise, err := scanFranchise(rows)
		if err != nil {
			return nil, err
		}
		franchises = append(franchises, franchise)
	}
	return franchises, rows.Err()
}

func (db *Postgres) SaveFranchise(ctx context.Context, franchise *model.Franchise) error {
	query := `
		INSERT INTO franchises (id, name, active, branches)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			active = EXCLUDED.active,
			branches = EXCLUDED.branches
	`
	branches := franchise.Branches
	if branches == nil {
		branches = []model.Branch{}
	}
	_, err := db.Pool.Exec(ctx, query, franchise.ID, franchise.Name, franchise.Active, branches)
	return err
}

func (db *Postgres) DeleteFranchise(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM franchises WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *Postgres) queryFranchise(ctx context.Context, query string, arg any) (*model.Franchise, error) {
	row := db.Pool.QueryRow(ctx, query, arg)
	franchise, err := scanFranchise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return franchise, nil
}

func scanFranchise(row pgx.Row) (*model.Franchise, error) {
	var franchise model.Franchise
	if err := row.Scan(&franchise.ID, &franchise.Name, &franchise.Active, &franchise.Branches); err != nil {
		return nil, err
	}
	if franchise.Branches == nil {
		franchise.Branches = []model.Branch{}
	}
	return &franchise, nil
}
