// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
)

// PostgresRepository is the durable implementation of [Repository].
//
// Child re-rooting on delete is handled by the schema (ON DELETE SET NULL on
// parent_id).
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed category repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const categoryColumns = ` id, name, slug, description, parent_id, created_at, updated_at`

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*Category, error) {
	return r.queryOne(ctx, `SELECT`+categoryColumns+` FROM categories WHERE id = $1`, id)
}

func (r *PostgresRepository) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	return r.queryOne(ctx, `SELECT`+categoryColumns+` FROM categories WHERE slug = $1`, slug)
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+categoryColumns+` FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, category *Category) error {
	query := `
		INSERT INTO categories (name, slug, description, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		category.Name, category.Slug, category.Description, category.ParentID,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, patch Patch) (*Category, error) {
	query := `
		UPDATE categories SET
			name        = COALESCE($2, name),
			slug        = COALESCE($3, slug),
			description = COALESCE($4, description),
			parent_id   = CASE WHEN $6 THEN NULL ELSE COALESCE($5, parent_id) END,
			updated_at  = NOW()
		WHERE id = $1
		RETURNING` + categoryColumns

	row := r.pool.QueryRow(ctx, query, id,
		patch.Name, patch.Slug, patch.Description, patch.ParentID, patch.ClearParent,
	)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Category")
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	return category, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, arg any) (*Category, error) {
	category, err := scanCategory(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Category")
		}
		return nil, fmt.Errorf("query category: %w", err)
	}

	return category, nil
}

func scanCategory(row pgx.Row) (*Category, error) {
	var category Category
	err := row.Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.ParentID, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &category, nil
}
