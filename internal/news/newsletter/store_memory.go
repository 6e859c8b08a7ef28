// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package newsletter

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is the in-memory implementation of [Repository].
type MemoryStore struct {
	mu          sync.Mutex
	subscribers map[int]Subscriber
	nextID      int
}

// NewMemoryStore creates an empty in-memory subscriber store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		subscribers: make(map[int]Subscriber),
		nextID:      1,
	}
}

func (s *MemoryStore) Subscribe(_ context.Context, incoming *Subscriber) (*Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := normalizeEmail(incoming.Email)

	for id, subscriber := range s.subscribers {
		if normalizeEmail(subscriber.Email) != normalized {
			continue
		}
		if !subscriber.Unsubscribed {
			clone := subscriber
			return &clone, nil
		}

		// Reactivation keeps the id, name, and confirmation status but
		// refreshes the date.
		subscriber.Unsubscribed = false
		subscriber.SubscriptionDate = time.Now().UTC()
		s.subscribers[id] = subscriber
		clone := subscriber
		return &clone, nil
	}

	subscriber := Subscriber{
		ID:               s.nextID,
		Email:            incoming.Email,
		Name:             incoming.Name,
		Confirmed:        incoming.Confirmed,
		SubscriptionDate: time.Now().UTC(),
	}
	s.subscribers[subscriber.ID] = subscriber
	s.nextID++

	clone := subscriber
	return &clone, nil
}

func (s *MemoryStore) Unsubscribe(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := normalizeEmail(email)
	for id, subscriber := range s.subscribers {
		if normalizeEmail(subscriber.Email) == normalized {
			subscriber.Unsubscribed = true
			s.subscribers[id] = subscriber
			return true, nil
		}
	}

	return false, nil
}

func (s *MemoryStore) FindAll(_ context.Context) ([]*Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	all := make([]*Subscriber, 0, len(ids))
	for _, id := range ids {
		subscriber := s.subscribers[id]
		all = append(all, &subscriber)
	}

	return all, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
