// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package category

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
)

// MemoryStore is the in-memory implementation of [Repository].
//
// Reads return copies; stored state is never reachable through a returned
// pointer.
type MemoryStore struct {
	mu         sync.RWMutex
	categories map[int]Category
	nextID     int
}

// NewMemoryStore creates an empty in-memory category store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories: make(map[int]Category),
		nextID:     1,
	}
}

func (s *MemoryStore) FindByID(_ context.Context, id int) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.categories[id]
	if !ok {
		return nil, apperr.NotFound("Category")
	}

	return copyCategory(stored), nil
}

func (s *MemoryStore) FindBySlug(_ context.Context, slug string) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, stored := range s.categories {
		if stored.Slug == slug {
			return copyCategory(stored), nil
		}
	}

	return nil, apperr.NotFound("Category")
}

func (s *MemoryStore) FindAll(_ context.Context) ([]*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.categories))
	for id := range s.categories {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	all := make([]*Category, 0, len(ids))
	for _, id := range ids {
		all = append(all, copyCategory(s.categories[id]))
	}

	return all, nil
}

func (s *MemoryStore) Create(_ context.Context, category *Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	category.ID = s.nextID
	category.CreatedAt = now
	category.UpdatedAt = now
	s.nextID++

	s.categories[category.ID] = *copyCategory(*category)

	return nil
}

func (s *MemoryStore) Update(_ context.Context, id int, patch Patch) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.categories[id]
	if !ok {
		return nil, apperr.NotFound("Category")
	}

	if patch.Name != nil {
		stored.Name = *patch.Name
	}
	if patch.Slug != nil {
		stored.Slug = *patch.Slug
	}
	if patch.Description != nil {
		stored.Description = *patch.Description
	}
	if patch.ClearParent {
		stored.ParentID = nil
	} else if patch.ParentID != nil {
		parentID := *patch.ParentID
		stored.ParentID = &parentID
	}
	stored.UpdatedAt = time.Now().UTC()

	s.categories[id] = *copyCategory(stored)

	return copyCategory(stored), nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return false, nil
	}

	delete(s.categories, id)

	// Orphaned children re-root rather than dangle.
	for childID, child := range s.categories {
		if child.ParentID != nil && *child.ParentID == id {
			child.ParentID = nil
			s.categories[childID] = child
		}
	}

	return true, nil
}

func copyCategory(c Category) *Category {
	clone := c
	if c.ParentID != nil {
		parentID := *c.ParentID
		clone.ParentID = &parentID
	}

	return &clone
}
