// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/internal/users/auth"
)

func newRedisStore(t *testing.T) (*auth.RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return auth.NewRedisSessionStore(client), server
}

/*
TestRedisSessionStore_RoundTrip saves, finds, and deletes a session against
an embedded Redis.
*/
func TestRedisSessionStore_RoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	session := &auth.Session{
		ID:        "0192e5f2-test-session",
		UserID:    42,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, session))

	found, err := store.Find(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, found.UserID)

	require.NoError(t, store.Delete(ctx, session.ID))

	_, err = store.Find(ctx, session.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestRedisSessionStore_TTLExpiry verifies sessions disappear once the Redis
TTL elapses.
*/
func TestRedisSessionStore_TTLExpiry(t *testing.T) {
	store, server := newRedisStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	session := &auth.Session{
		ID:        "expiring-session",
		UserID:    7,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	}
	require.NoError(t, store.Save(ctx, session))

	server.FastForward(2 * time.Minute)

	_, err := store.Find(ctx, session.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestRedisSessionStore_RejectsExpired refuses to persist a session already
past its expiry.
*/
func TestRedisSessionStore_RejectsExpired(t *testing.T) {
	store, _ := newRedisStore(t)

	session := &auth.Session{
		ID:        "stale-session",
		UserID:    7,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	assert.Error(t, store.Save(context.Background(), session))
}
