// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

// Package account manages newsroom user records: authors, editors,
// publishers, and administrators.
package account

import (
	"time"

	"github.com/matthansbello/labarintech/internal/platform/sec"
)

// User is a newsroom staff account.
//
// # Security
//
// PasswordHash is excluded from JSON serialization unconditionally. There is
// no code path that returns a password, hashed or not, to a client.
type User struct {
	ID           int          `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	DisplayName  string       `json:"displayName,omitempty"`
	AvatarURL    string       `json:"avatar,omitempty"`
	Bio          string       `json:"bio,omitempty"`
	Role         sec.UserRole `json:"role"`
	ExternalID   string       `json:"externalId,omitempty"` // Reference into the external identity provider
	PasswordHash string       `json:"-"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Patch describes a partial update to a [User]. Nil fields are preserved.
// Password changes go through the service so the hash is never set directly.
type Patch struct {
	Email       *string       `json:"email"`
	DisplayName *string       `json:"displayName"`
	AvatarURL   *string       `json:"avatar"`
	Bio         *string       `json:"bio"`
	Role        *sec.UserRole `json:"role"`
	ExternalID  *string       `json:"externalId"`

	passwordHash *string
}

// Field identifiers for validation errors.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
)
