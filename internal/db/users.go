package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/franchise-api/backend/internal/model"
)

const userColumns = `
	id, username, password_hash, full_name, email, active, roles,
	reset_token, reset_expires_at, password_change_required, created_at, updated_at
`

func (db *Postgres) FindUserByID(ctx context.Context, id string) (*model.UserAccount, error) {
	return db.queryUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (db *Postgres) FindUserByUsername(ctx context.Context, username string) (*model.UserAccount, error) {
	return db.queryUser(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(username) = LOWER($1)`, username)
}

func (db *Postgres) FindUserByEmail(ctx context.Context, email string) (*model.UserAccount, error) {
	return db.queryUser(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

func (db *Postgres) FindUserByResetToken(ctx context.Context, token string) (*model.UserAccount, error) {
	return db.queryUser(ctx, `SELECT `+userColumns+` FROM users WHERE reset_token = $1`, token)
}

func (db *Postgres) FindAllUsers(ctx context.Context) ([]*model.UserAccount, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*model.UserAccount{}
	for rows.Next() {
		account, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (db *Postgres) SaveUser(ctx context.Context, account *model.UserAccount) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			password_hash = EXCLUDED.password_hash,
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			active = EXCLUDED.active,
			roles = EXCLUDED.roles,
			reset_token = EXCLUDED.reset_token,
			reset_expires_at = EXCLUDED.reset_expires_at,
			password_change_required = EXCLUDED.password_change_required,
			updated_at = NOW()
	`
	var resetToken *string
	if account.ResetToken != "" {
		resetToken = &account.ResetToken
	}
	_, err := db.Pool.Exec(ctx, query,
		account.ID,
		account.Username,
		account.PasswordHash,
		account.FullName,
		account.Email,
		account.Active,
		model.RoleNames(account.Roles),
		resetToken,
		account.ResetExpiresAt,
		account.PasswordChangeRequired,
		account.CreatedAt,
	)
	return err
}

func (db *Postgres) DeleteUser(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *Postgres) queryUser(ctx context.Context, query string, arg any) (*model.UserAccount, error) {
	row := db.Pool.QueryRow(ctx, query, arg)
	account, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return account, nil
}

func scanUser(row pgx.Row) (*model.UserAccount, error) {
	var (
		account    model.UserAccount
		roles      []string
		resetToken *string
	)
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.FullName,
		&account.Email,
		&account.Active,
		&roles,
		&resetToken,
		&account.ResetExpiresAt,
		&account.PasswordChangeRequired,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if resetToken != nil {
		account.ResetToken = *resetToken
	}
	account.Roles = make([]model.Role, 0, len(roles))
	for _, r := range roles {
		account.Roles = append(account.Roles, model.Role(r))
	}
	return &account, nil
}
