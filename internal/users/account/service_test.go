// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package account_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/internal/platform/sec"
	"github.com/matthansbello/labarintech/internal/users/account"
)

func newTestService(t *testing.T) *account.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.NewService(account.NewMemoryStore(), logger)
}

func registerUser(t *testing.T, service *account.Service, username, email string) *account.User {
	t.Helper()

	user, err := service.CreateUser(context.Background(), account.CreateUserInput{
		Username: username,
		Email:    email,
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	return user
}

/*
TestService_CreateUser checks defaults and that the stored hash is a real
bcrypt digest, not the plaintext.
*/
func TestService_CreateUser(t *testing.T) {
	service := newTestService(t)
	user := registerUser(t, service, "amina", "amina@example.com")

	assert.Equal(t, 1, user.ID)
	assert.Equal(t, sec.RoleAuthor, user.Role, "role defaults to author")
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "correct-horse-battery", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct-horse-battery", user.PasswordHash))
}

/*
TestUser_PasswordNeverSerialized is the core security property: no JSON
rendering of a user may contain the password hash.
*/
func TestUser_PasswordNeverSerialized(t *testing.T) {
	service := newTestService(t)
	user := registerUser(t, service, "bola", "bola@example.com")

	payload, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), user.PasswordHash)
	assert.NotContains(t, string(payload), "password")
	assert.Contains(t, string(payload), `"username":"bola"`)
}

/*
TestService_CreateUser_Uniqueness rejects duplicate usernames and emails with
409 semantics.
*/
func TestService_CreateUser_Uniqueness(t *testing.T) {
	service := newTestService(t)
	registerUser(t, service, "chidi", "chidi@example.com")

	_, err := service.CreateUser(context.Background(), account.CreateUserInput{
		Username: "chidi", Email: "other@example.com", Password: "long-enough-pass",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	_, err = service.CreateUser(context.Background(), account.CreateUserInput{
		Username: "other", Email: "CHIDI@example.com", Password: "long-enough-pass",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code, "email uniqueness is case-insensitive")
}

/*
TestService_CreateUser_Validation covers the registration rules.
*/
func TestService_CreateUser_Validation(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name  string
		input account.CreateUserInput
	}{
		{"short_username", account.CreateUserInput{Username: "ab", Email: "a@b.com", Password: "long-enough-pass"}},
		{"bad_email", account.CreateUserInput{Username: "valid", Email: "nope", Password: "long-enough-pass"}},
		{"short_password", account.CreateUserInput{Username: "valid", Email: "a@b.com", Password: "short"}},
		{"bad_role", account.CreateUserInput{Username: "valid", Email: "a@b.com", Password: "long-enough-pass", Role: "king"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateUser(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestService_ProfileFields verifies the avatar, bio, and external identity
reference survive registration and partial updates.
*/
func TestService_ProfileFields(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	user, err := service.CreateUser(ctx, account.CreateUserInput{
		Username:   "efe",
		Email:      "efe@example.com",
		Password:   "correct-horse-battery",
		AvatarURL:  "https://cdn.example.com/efe.png",
		Bio:        "Covers hardware and startups.",
		ExternalID: "fb-12345",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/efe.png", user.AvatarURL)
	assert.Equal(t, "Covers hardware and startups.", user.Bio)
	assert.Equal(t, "fb-12345", user.ExternalID)

	payload, err := json.Marshal(user)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"avatar":"https://cdn.example.com/efe.png"`)
	assert.Contains(t, string(payload), `"bio":"Covers hardware and startups."`)
	assert.Contains(t, string(payload), `"externalId":"fb-12345"`)

	newBio := "Editor at large."
	updated, err := service.UpdateUser(ctx, user.ID, account.Patch{Bio: &newBio})
	require.NoError(t, err)
	assert.Equal(t, "Editor at large.", updated.Bio)
	assert.Equal(t, user.AvatarURL, updated.AvatarURL, "untouched fields are preserved")
	assert.Equal(t, user.ExternalID, updated.ExternalID)
}

/*
TestService_ChangePassword verifies rotation invalidates the old secret.
*/
func TestService_ChangePassword(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()
	user := registerUser(t, service, "dayo", "dayo@example.com")

	require.NoError(t, service.ChangePassword(ctx, user.ID, "a-brand-new-secret"))

	refreshed, err := service.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, sec.CheckPasswordHash("correct-horse-battery", refreshed.PasswordHash))
	assert.True(t, sec.CheckPasswordHash("a-brand-new-secret", refreshed.PasswordHash))
}
