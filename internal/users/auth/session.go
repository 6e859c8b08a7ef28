// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

// Package auth implements login sessions and token issuance.
//
// Access is granted through short-lived HS256 JWTs; long-lived refresh is
// backed by server-side session records so a logout revokes immediately,
// which stateless tokens cannot do.
package auth

import "time"

// Session is a server-side refresh session.
//
// The id doubles as the refresh token handed to the client; it is a UUIDv7,
// so sessions sort chronologically in storage.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
