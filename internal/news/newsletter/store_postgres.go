// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is the durable implementation of [Repository].
//
// The idempotent subscribe is a single upsert keyed on the lowercased email,
// re-dating only rows that were unsubscribed and leaving the stored name and
// confirmation status alone on conflict.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed subscriber repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const subscriberColumns = ` id, email, name, confirmed, unsubscribed, subscription_date`

func (r *PostgresRepository) Subscribe(ctx context.Context, incoming *Subscriber) (*Subscriber, error) {
	query := `
		INSERT INTO newsletter_subscribers (email, name, confirmed, unsubscribed, subscription_date)
		VALUES ($1, $2, $3, FALSE, NOW())
		ON CONFLICT (email) DO UPDATE SET
			unsubscribed      = FALSE,
			subscription_date = CASE
				WHEN newsletter_subscribers.unsubscribed THEN NOW()
				ELSE newsletter_subscribers.subscription_date
			END
		RETURNING` + subscriberColumns

	var subscriber Subscriber
	err := r.pool.QueryRow(ctx, query,
		strings.ToLower(strings.TrimSpace(incoming.Email)), incoming.Name, incoming.Confirmed,
	).Scan(
		&subscriber.ID, &subscriber.Email, &subscriber.Name,
		&subscriber.Confirmed, &subscriber.Unsubscribed, &subscriber.SubscriptionDate,
	)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	return &subscriber, nil
}

func (r *PostgresRepository) Unsubscribe(ctx context.Context, email string) (bool, error) {
	query := `
		UPDATE newsletter_subscribers SET unsubscribed = TRUE
		WHERE email = $1`

	tag, err := r.pool.Exec(ctx, query, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return false, fmt.Errorf("unsubscribe: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*Subscriber, error) {
	query := `SELECT` + subscriberColumns + ` FROM newsletter_subscribers ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*Subscriber{}, nil
		}
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := make([]*Subscriber, 0)
	for rows.Next() {
		var subscriber Subscriber
		err := rows.Scan(
			&subscriber.ID, &subscriber.Email, &subscriber.Name,
			&subscriber.Confirmed, &subscriber.Unsubscribed, &subscriber.SubscriptionDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subscribers = append(subscribers, &subscriber)
	}

	return subscribers, rows.Err()
}
