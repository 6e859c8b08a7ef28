// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthansbello/labarintech/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies the bcrypt hash validates the original
password and nothing else.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("a-long-password")
	require.NoError(t, err)
	assert.NotEqual(t, "a-long-password", hash)

	assert.True(t, sec.CheckPasswordHash("a-long-password", hash))
	assert.False(t, sec.CheckPasswordHash("wrong-password", hash))
}

/*
TestTokenService_RoundTrip generates and verifies an access token.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("unit-test-secret", "labarin.tech")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("42", "amina", "editor", time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "amina", claims.Username)
	assert.Equal(t, "editor", claims.Role)
	assert.Equal(t, "labarin.tech", claims.Issuer)
}

/*
TestTokenService_Rejections covers expiry, tampering, and the empty secret.
*/
func TestTokenService_Rejections(t *testing.T) {
	service, err := sec.NewTokenService("unit-test-secret", "labarin.tech")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		token, err := service.GenerateAccessToken("42", "amina", "editor", -time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other, err := sec.NewTokenService("a-different-secret", "labarin.tech")
		require.NoError(t, err)

		token, err := other.GenerateAccessToken("42", "amina", "editor", time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.VerifyToken("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("empty_secret", func(t *testing.T) {
		_, err := sec.NewTokenService("", "labarin.tech")
		assert.Error(t, err)
	})
}

/*
TestUserRole_AtLeast pins the role hierarchy ordering.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.UserRole
		target sec.UserRole
		want   bool
	}{
		{"admin_over_editor", sec.RoleAdmin, sec.RoleEditor, true},
		{"publisher_over_editor", sec.RolePublisher, sec.RoleEditor, true},
		{"editor_exact", sec.RoleEditor, sec.RoleEditor, true},
		{"author_below_editor", sec.RoleAuthor, sec.RoleEditor, false},
		{"unknown_below_all", sec.UserRole("ghost"), sec.RoleAuthor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}
