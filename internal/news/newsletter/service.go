// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package newsletter

import (
	"context"
	"log/slog"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/internal/platform/validate"
)

// Service implements the subscription business logic.
type Service struct {
	subscribers Repository
	logger      *slog.Logger
}

// NewService creates the newsletter service.
func NewService(subscribers Repository, logger *slog.Logger) *Service {
	return &Service{subscribers: subscribers, logger: logger}
}

// Subscribe validates the address and registers the subscriber. Repeated
// subscriptions of the same email are a no-op that returns the existing
// record.
func (s *Service) Subscribe(ctx context.Context, subscriber *Subscriber) (*Subscriber, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, subscriber.Email).Email(FieldEmail, subscriber.Email)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	registered, err := s.subscribers.Subscribe(ctx, subscriber)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.logger.InfoContext(ctx, "newsletter_subscribed", slog.Int("subscriber_id", registered.ID))

	return registered, nil
}

// Unsubscribe marks the subscription as unsubscribed. Repeating it for a
// known email is an idempotent success; unknown addresses yield NOT_FOUND.
func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	if err := validator.Err(); err != nil {
		return err
	}

	found, err := s.subscribers.Unsubscribe(ctx, email)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Subscription")
	}

	s.logger.InfoContext(ctx, "newsletter_unsubscribed")

	return nil
}
