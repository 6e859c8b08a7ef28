// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package article

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/pkg/slice"
)

// # In-Memory Store

// MemoryStore is the in-memory reference implementation of [Repository] and
// [RevisionRepository].
//
// It is the default storage engine when no DATABASE_URL is configured and the
// fixture store for the test suite. All reads return copies so callers can
// never mutate stored state through a returned pointer.
type MemoryStore struct {
	mu             sync.RWMutex
	articles       map[int]Article
	revisions      map[int]Revision
	nextArticleID  int
	nextRevisionID int
}

// NewMemoryStore creates an empty in-memory article store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		articles:       make(map[int]Article),
		revisions:      make(map[int]Revision),
		nextArticleID:  1,
		nextRevisionID: 1,
	}
}

// FindByID returns a copy of the article with the given id.
func (s *MemoryStore) FindByID(_ context.Context, id int) (*Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.articles[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}

	return copyArticle(stored), nil
}

// FindBySlug returns a copy of the article matching slug.
func (s *MemoryStore) FindBySlug(_ context.Context, slug string) (*Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, stored := range s.articles {
		if stored.Slug == slug {
			return copyArticle(stored), nil
		}
	}

	return nil, apperr.NotFound("Article")
}

// List returns the filtered page and the pre-pagination total.
func (s *MemoryStore) List(_ context.Context, filter Filter, limit, offset int) ([]*Article, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*Article, 0)
	for _, stored := range s.collection() {
		if matchesFilter(stored, filter) {
			matched = append(matched, copyArticle(*stored))
		}
	}

	// Newest first by effective date; id breaks ties deterministically.
	sort.SliceStable(matched, func(i, j int) bool {
		di, dj := matched[i].EffectiveDate(), matched[j].EffectiveDate()
		if di.Equal(dj) {
			return matched[i].ID > matched[j].ID
		}
		return di.After(dj)
	})

	total := len(matched)
	if offset >= total {
		return []*Article{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return matched[offset:end], total, nil
}

// Create assigns the next sequential id and stamps the timestamps.
func (s *MemoryStore) Create(_ context.Context, article *Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	article.ID = s.nextArticleID
	article.Views = 0
	article.CreatedAt = now
	article.UpdatedAt = now
	s.nextArticleID++

	s.articles[article.ID] = *copyArticle(*article)

	return nil
}

// Update merges patch over the stored record and stamps updatedAt.
func (s *MemoryStore) Update(_ context.Context, id int, patch Patch) (*Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.articles[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}

	applyPatch(&stored, patch)
	stored.UpdatedAt = time.Now().UTC()
	s.articles[id] = *copyArticle(stored)

	return copyArticle(stored), nil
}

// Delete removes the article and cascades to its revisions.
func (s *MemoryStore) Delete(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[id]; !ok {
		return false, nil
	}

	delete(s.articles, id)
	for revisionID, revision := range s.revisions {
		if revision.ArticleID == id {
			delete(s.revisions, revisionID)
		}
	}

	return true, nil
}

// Search scans the published collection for substring matches and ranks
// title hits above body hits.
func (s *MemoryStore) Search(_ context.Context, query string, limit int) ([]*Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []*Article{}, nil
	}

	titleHits := make([]*Article, 0)
	bodyHits := make([]*Article, 0)
	for _, stored := range s.collection() {
		if stored.State != StatePublished {
			continue
		}

		if strings.Contains(strings.ToLower(stored.Title), needle) {
			titleHits = append(titleHits, copyArticle(*stored))
			continue
		}
		if matchesBody(stored, needle) {
			bodyHits = append(bodyHits, copyArticle(*stored))
		}
	}

	ranked := append(titleHits, bodyHits...)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// IncrementViews adds delta to the view counter without touching updatedAt.
func (s *MemoryStore) IncrementViews(_ context.Context, id int, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.articles[id]
	if !ok {
		return apperr.NotFound("Article")
	}

	stored.Views += delta
	s.articles[id] = stored

	return nil
}

// FindByArticle returns the article's revisions, newest first.
func (s *MemoryStore) FindByArticle(_ context.Context, articleID int) ([]*Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]*Revision, 0)
	for _, revision := range s.revisions {
		if revision.ArticleID == articleID {
			clone := revision
			found = append(found, &clone)
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].CreatedAt.Equal(found[j].CreatedAt) {
			return found[i].ID > found[j].ID
		}
		return found[i].CreatedAt.After(found[j].CreatedAt)
	})

	return found, nil
}

// Create persists a revision snapshot with the next sequential revision id.
func (s *MemoryStore) CreateRevision(_ context.Context, revision *Revision) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	revision.ID = s.nextRevisionID
	revision.CreatedAt = time.Now().UTC()
	s.nextRevisionID++

	s.revisions[revision.ID] = *revision

	return nil
}

// Revisions returns the [RevisionRepository] view of the store. Both views
// share the same mutex, so article deletion and revision reads never race.
func (s *MemoryStore) Revisions() RevisionRepository {
	return memoryRevisions{store: s}
}

// memoryRevisions adapts MemoryStore to [RevisionRepository]; the article and
// revision contracts both want a Create method, so the revision side gets its
// own receiver.
type memoryRevisions struct {
	store *MemoryStore
}

func (r memoryRevisions) FindByArticle(ctx context.Context, articleID int) ([]*Revision, error) {
	return r.store.FindByArticle(ctx, articleID)
}

func (r memoryRevisions) Create(ctx context.Context, revision *Revision) error {
	return r.store.CreateRevision(ctx, revision)
}

// ── Internals ───────────────────────────────────────────────────────────────

// collection returns pointers to the stored articles in ascending id order,
// which is the insertion order and the stable baseline for search ranking.
// Callers must hold at least the read lock.
func (s *MemoryStore) collection() []*Article {
	ids := make([]int, 0, len(s.articles))
	for id := range s.articles {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	ordered := make([]*Article, 0, len(ids))
	for _, id := range ids {
		stored := s.articles[id]
		ordered = append(ordered, &stored)
	}

	return ordered
}

func matchesFilter(a *Article, filter Filter) bool {
	if filter.Category != "" && !slice.Contains(a.Categories, filter.Category) {
		return false
	}
	if filter.Tag != "" && !slice.Contains(a.Tags, filter.Tag) {
		return false
	}
	if filter.Featured && !a.Featured {
		return false
	}
	if filter.State != "" && a.State != filter.State {
		return false
	}

	return true
}

// matchesBody checks the non-title searchable fields for the lowered needle.
func matchesBody(a *Article, needle string) bool {
	if strings.Contains(strings.ToLower(a.Content), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Excerpt), needle) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	for _, category := range a.Categories {
		if strings.Contains(strings.ToLower(category), needle) {
			return true
		}
	}

	return false
}

// applyPatch overlays every non-nil patch field onto target.
func applyPatch(target *Article, patch Patch) {
	if patch.Title != nil {
		target.Title = *patch.Title
	}
	if patch.Slug != nil {
		target.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		target.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		target.Content = *patch.Content
	}
	if patch.AuthorID != nil {
		target.AuthorID = *patch.AuthorID
	}
	if patch.State != nil {
		target.State = *patch.State
	}
	if patch.FeaturedImage != nil {
		target.FeaturedImage = *patch.FeaturedImage
	}
	if patch.Categories != nil {
		target.Categories = append([]string(nil), (*patch.Categories)...)
	}
	if patch.Tags != nil {
		target.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.Featured != nil {
		target.Featured = *patch.Featured
	}
	if patch.MetaDescription != nil {
		target.MetaDescription = *patch.MetaDescription
	}
	if patch.PublishedAt != nil {
		publishedAt := *patch.PublishedAt
		target.PublishedAt = &publishedAt
	}
	if patch.ScheduledPublish != nil {
		scheduledPublish := *patch.ScheduledPublish
		target.ScheduledPublish = &scheduledPublish
	}
	if patch.ExternalID != nil {
		target.ExternalID = *patch.ExternalID
	}
}

// copyArticle deep-copies slices and pointer timestamps so stored state can
// never be mutated through a returned entity.
func copyArticle(a Article) *Article {
	clone := a
	clone.Categories = append([]string(nil), a.Categories...)
	clone.Tags = append([]string(nil), a.Tags...)
	if a.PublishedAt != nil {
		publishedAt := *a.PublishedAt
		clone.PublishedAt = &publishedAt
	}
	if a.ScheduledPublish != nil {
		scheduledPublish := *a.ScheduledPublish
		clone.ScheduledPublish = &scheduledPublish
	}

	return &clone
}
