// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package account

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
)

// MemoryStore is the in-memory implementation of [Repository].
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[int]User
	nextID int
}

// NewMemoryStore creates an empty in-memory user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[int]User),
		nextID: 1,
	}
}

func (s *MemoryStore) FindByID(_ context.Context, id int) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}

	clone := stored
	return &clone, nil
}

func (s *MemoryStore) FindByUsername(_ context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, stored := range s.users {
		if stored.Username == username {
			clone := stored
			return &clone, nil
		}
	}

	return nil, apperr.NotFound("User")
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, stored := range s.users {
		if strings.ToLower(stored.Email) == normalized {
			clone := stored
			return &clone, nil
		}
	}

	return nil, apperr.NotFound("User")
}

func (s *MemoryStore) Create(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	user.ID = s.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	s.nextID++

	s.users[user.ID] = *user

	return nil
}

func (s *MemoryStore) Update(_ context.Context, id int, patch Patch) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}

	if patch.Email != nil {
		stored.Email = *patch.Email
	}
	if patch.DisplayName != nil {
		stored.DisplayName = *patch.DisplayName
	}
	if patch.AvatarURL != nil {
		stored.AvatarURL = *patch.AvatarURL
	}
	if patch.Bio != nil {
		stored.Bio = *patch.Bio
	}
	if patch.Role != nil {
		stored.Role = *patch.Role
	}
	if patch.ExternalID != nil {
		stored.ExternalID = *patch.ExternalID
	}
	if patch.passwordHash != nil {
		stored.PasswordHash = *patch.passwordHash
	}
	stored.UpdatedAt = time.Now().UTC()

	s.users[id] = stored

	clone := stored
	return &clone, nil
}
