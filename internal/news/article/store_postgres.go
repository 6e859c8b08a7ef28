// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
)

// # PostgreSQL Store

// PostgresRepository is the durable implementation of [Repository] backed by
// a pgx connection pool.
//
// Sequential ids come from the articles_id_seq sequence, which gives the same
// monotonic, never-reused guarantee as the in-memory engine. Revision cascade
// on delete is enforced by the schema (ON DELETE CASCADE), so Delete issues a
// single statement.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed article repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const articleColumns = `
	id, title, slug, excerpt, content, author_id, state, featured_image,
	categories, tags, views, featured, meta_description, published_at,
	scheduled_publish, external_id, created_at, updated_at`

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*Article, error) {
	query := `SELECT` + articleColumns + ` FROM articles WHERE id = $1`

	return r.queryOne(ctx, query, id)
}

func (r *PostgresRepository) FindBySlug(ctx context.Context, slug string) (*Article, error) {
	query := `SELECT` + articleColumns + ` FROM articles WHERE slug = $1`

	return r.queryOne(ctx, query, slug)
}

func (r *PostgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Article, int, error) {
	where := `WHERE ($1 = '' OR $1 = ANY(categories))
	            AND ($2 = '' OR $2 = ANY(tags))
	            AND (NOT $3::bool OR featured)
	            AND ($4 = '' OR state = $4)`
	args := []any{filter.Category, filter.Tag, filter.Featured, string(filter.State)}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	query := `SELECT` + articleColumns + ` FROM articles ` + where + `
	          ORDER BY COALESCE(published_at, created_at) DESC, id DESC
	          LIMIT $5 OFFSET $6`
	rows, err := r.pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles, err := scanArticles(rows)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *PostgresRepository) Create(ctx context.Context, article *Article) error {
	query := `
		INSERT INTO articles (
			title, slug, excerpt, content, author_id, state, featured_image,
			categories, tags, featured, meta_description, published_at,
			scheduled_publish, external_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, views, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		article.Title, article.Slug, article.Excerpt, article.Content,
		nullableID(article.AuthorID), string(article.State), article.FeaturedImage,
		article.Categories, article.Tags, article.Featured, article.MetaDescription,
		article.PublishedAt, article.ScheduledPublish, article.ExternalID,
	).Scan(&article.ID, &article.Views, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, patch Patch) (*Article, error) {
	query := `
		UPDATE articles SET
			title             = COALESCE($2, title),
			slug              = COALESCE($3, slug),
			excerpt           = COALESCE($4, excerpt),
			content           = COALESCE($5, content),
			author_id         = COALESCE($6, author_id),
			state             = COALESCE($7, state),
			featured_image    = COALESCE($8, featured_image),
			categories        = COALESCE($9, categories),
			tags              = COALESCE($10, tags),
			featured          = COALESCE($11, featured),
			meta_description  = COALESCE($12, meta_description),
			published_at      = COALESCE($13, published_at),
			scheduled_publish = COALESCE($14, scheduled_publish),
			external_id       = COALESCE($15, external_id),
			updated_at        = NOW()
		WHERE id = $1
		RETURNING` + articleColumns

	row := r.pool.QueryRow(ctx, query, id,
		patch.Title, patch.Slug, patch.Excerpt, patch.Content,
		patch.AuthorID, (*string)(patch.State), patch.FeaturedImage,
		patch.Categories, patch.Tags, patch.Featured, patch.MetaDescription,
		patch.PublishedAt, patch.ScheduledPublish, patch.ExternalID,
	)

	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Article")
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	return article, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string, limit int) ([]*Article, error) {
	// Title matches rank first, then collection (id) order within each band.
	sql := `SELECT` + articleColumns + ` FROM articles
	        WHERE state = 'published'
	          AND (
	                title ILIKE '%' || $1 || '%'
	             OR content ILIKE '%' || $1 || '%'
	             OR excerpt ILIKE '%' || $1 || '%'
	             OR EXISTS (SELECT 1 FROM unnest(tags) t WHERE t ILIKE '%' || $1 || '%')
	             OR EXISTS (SELECT 1 FROM unnest(categories) c WHERE c ILIKE '%' || $1 || '%')
	          )
	        ORDER BY (title ILIKE '%' || $1 || '%') DESC, id ASC
	        LIMIT $2`

	rows, err := r.pool.Query(ctx, sql, escapeLike(query), limit)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// escapeLike neutralizes the LIKE metacharacters so user queries match
// literally, the same way the in-memory substring search does.
func escapeLike(query string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
}

func (r *PostgresRepository) IncrementViews(ctx context.Context, id int, delta int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE articles SET views = views + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Article")
	}

	return nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, arg any) (*Article, error) {
	article, err := scanArticle(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Article")
		}
		return nil, fmt.Errorf("query article: %w", err)
	}

	return article, nil
}

// # PostgreSQL Revision Store

// PostgresRevisionRepository is the durable implementation of
// [RevisionRepository].
type PostgresRevisionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRevisionRepository creates a PostgreSQL-backed revision repository.
func NewPostgresRevisionRepository(pool *pgxpool.Pool) *PostgresRevisionRepository {
	return &PostgresRevisionRepository{pool: pool}
}

func (r *PostgresRevisionRepository) FindByArticle(ctx context.Context, articleID int) ([]*Revision, error) {
	query := `
		SELECT id, article_id, content, COALESCE(author_id, 0), note, created_at
		FROM article_revisions
		WHERE article_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	revisions := make([]*Revision, 0)
	for rows.Next() {
		var revision Revision
		if err := rows.Scan(
			&revision.ID, &revision.ArticleID, &revision.Content,
			&revision.AuthorID, &revision.Note, &revision.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revisions = append(revisions, &revision)
	}

	return revisions, rows.Err()
}

func (r *PostgresRevisionRepository) Create(ctx context.Context, revision *Revision) error {
	query := `
		INSERT INTO article_revisions (article_id, content, author_id, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		revision.ArticleID, revision.Content, nullableID(revision.AuthorID), revision.Note,
	).Scan(&revision.ID, &revision.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert revision: %w", err)
	}

	return nil
}

// ── Row mapping ─────────────────────────────────────────────────────────────

func scanArticle(row pgx.Row) (*Article, error) {
	var (
		article  Article
		authorID *int
		state    string
	)

	err := row.Scan(
		&article.ID, &article.Title, &article.Slug, &article.Excerpt,
		&article.Content, &authorID, &state, &article.FeaturedImage,
		&article.Categories, &article.Tags, &article.Views, &article.Featured,
		&article.MetaDescription, &article.PublishedAt, &article.ScheduledPublish,
		&article.ExternalID, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if authorID != nil {
		article.AuthorID = *authorID
	}
	article.State = State(state)

	return &article, nil
}

func scanArticles(rows pgx.Rows) ([]*Article, error) {
	articles := make([]*Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// nullableID maps the zero id to SQL NULL so foreign keys stay honest.
func nullableID(id int) *int {
	if id == 0 {
		return nil
	}
	return &id
}
