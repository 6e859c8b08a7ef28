// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package newsletter_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthansbello/labarintech/internal/news/newsletter"
	"github.com/matthansbello/labarintech/internal/platform/apperr"
)

func newTestService(t *testing.T) *newsletter.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newsletter.NewService(newsletter.NewMemoryStore(), logger)
}

func subscribe(t *testing.T, service *newsletter.Service, email, name string, confirmed bool) *newsletter.Subscriber {
	t.Helper()

	subscriber, err := service.Subscribe(context.Background(), &newsletter.Subscriber{
		Email:     email,
		Name:      name,
		Confirmed: confirmed,
	})
	require.NoError(t, err)

	return subscriber
}

/*
TestService_Subscribe_CarriesProfile verifies the client-supplied name and
confirmation flag land on the stored record.
*/
func TestService_Subscribe_CarriesProfile(t *testing.T) {
	service := newTestService(t)

	subscriber := subscribe(t, service, "reader@example.com", "Ada Reader", true)

	assert.Equal(t, 1, subscriber.ID)
	assert.Equal(t, "Ada Reader", subscriber.Name)
	assert.True(t, subscriber.Confirmed)
	assert.False(t, subscriber.Unsubscribed)
	assert.NotZero(t, subscriber.SubscriptionDate)
}

/*
TestService_Subscribe_Idempotent verifies the dedup rule: subscribing the
same address twice returns the same record without allocating a new id or
overwriting the stored profile.
*/
func TestService_Subscribe_Idempotent(t *testing.T) {
	service := newTestService(t)

	first := subscribe(t, service, "reader@example.com", "Ada Reader", true)
	second := subscribe(t, service, "reader@example.com", "Someone Else", false)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ada Reader", second.Name, "an active record keeps its original name")
	assert.True(t, second.Confirmed, "an active record keeps its confirmation status")
	assert.Equal(t, first.SubscriptionDate, second.SubscriptionDate, "active resubscribe keeps the original date")
}

/*
TestService_Subscribe_Validation rejects malformed addresses.
*/
func TestService_Subscribe_Validation(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name  string
		email string
	}{
		{"empty", ""},
		{"no_at", "not-an-email"},
		{"no_domain", "reader@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Subscribe(context.Background(), &newsletter.Subscriber{Email: tt.email})
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestService_UnsubscribeAndReactivate covers the full flip cycle: the id and
profile are kept, the subscription date refreshes on reactivation.
*/
func TestService_UnsubscribeAndReactivate(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	original := subscribe(t, service, "flip@example.com", "Flip Reader", true)

	require.NoError(t, service.Unsubscribe(ctx, "flip@example.com"))

	// Repeating the unsubscribe is an idempotent success.
	require.NoError(t, service.Unsubscribe(ctx, "flip@example.com"))

	reactivated := subscribe(t, service, "flip@example.com", "", false)
	assert.Equal(t, original.ID, reactivated.ID, "reactivation keeps the original id")
	assert.Equal(t, "Flip Reader", reactivated.Name, "reactivation keeps the original name")
	assert.True(t, reactivated.Confirmed, "reactivation keeps the confirmation status")
	assert.False(t, reactivated.Unsubscribed)
	assert.False(t, reactivated.SubscriptionDate.Before(original.SubscriptionDate))
}

/*
TestService_Unsubscribe_Unknown yields NOT_FOUND.
*/
func TestService_Unsubscribe_Unknown(t *testing.T) {
	service := newTestService(t)

	err := service.Unsubscribe(context.Background(), "ghost@example.com")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
