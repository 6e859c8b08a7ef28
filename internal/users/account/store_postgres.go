// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/internal/platform/sec"
)

// PostgresRepository is the durable implementation of [Repository].
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed user repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const userColumns = ` id, username, email, display_name, avatar_url, bio, role, external_id,
	password_hash, created_at, updated_at`

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*User, error) {
	return r.queryOne(ctx, `SELECT`+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.queryOne(ctx, `SELECT`+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.queryOne(ctx, `SELECT`+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (username, email, display_name, avatar_url, bio, role, external_id, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		user.Username, user.Email, user.DisplayName, user.AvatarURL, user.Bio,
		string(user.Role), user.ExternalID, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, patch Patch) (*User, error) {
	query := `
		UPDATE users SET
			email         = COALESCE($2, email),
			display_name  = COALESCE($3, display_name),
			avatar_url    = COALESCE($4, avatar_url),
			bio           = COALESCE($5, bio),
			role          = COALESCE($6, role),
			external_id   = COALESCE($7, external_id),
			password_hash = COALESCE($8, password_hash),
			updated_at    = NOW()
		WHERE id = $1
		RETURNING` + userColumns

	row := r.pool.QueryRow(ctx, query, id,
		patch.Email, patch.DisplayName, patch.AvatarURL, patch.Bio,
		(*string)(patch.Role), patch.ExternalID, patch.passwordHash,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, arg any) (*User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	return user, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var (
		user User
		role string
	)
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.DisplayName, &user.AvatarURL,
		&user.Bio, &role, &user.ExternalID, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = sec.UserRole(role)

	return &user, nil
}
