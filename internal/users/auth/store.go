// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package auth

import "context"

// SessionRepository defines the data access contract for refresh sessions.
//
// Implementations must expire sessions on their own schedule (TTL in Redis,
// lazy checks in memory); Find never returns an expired session.
type SessionRepository interface {

	// Save persists the session until its expiry.
	Save(ctx context.Context, session *Session) error

	// Find returns the live session with the given id, or NOT_FOUND if it is
	// unknown, revoked, or expired.
	Find(ctx context.Context, id string) (*Session, error)

	// Delete revokes the session. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}
