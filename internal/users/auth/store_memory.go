// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
)

// MemorySessionStore is the in-memory implementation of [SessionRepository].
//
// Expiry is checked lazily on Find; expired records are reaped on access
// rather than by a background sweeper.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]Session)}
}

func (s *MemorySessionStore) Save(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = *session

	return nil
}

func (s *MemorySessionStore) Find(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, apperr.NotFound("Session")
	}
	if session.Expired(time.Now().UTC()) {
		delete(s.sessions, id)
		return nil, apperr.NotFound("Session")
	}

	clone := session
	return &clone, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)

	return nil
}
