// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package article_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthansbello/labarintech/internal/news/article"
	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/pkg/pagination"
)

func newTestService(t *testing.T) (*article.Service, *article.MemoryStore) {
	t.Helper()

	store := article.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return article.NewService(store, store.Revisions(), logger), store
}

/*
TestService_CreateArticle_Defaults checks slug derivation and the draft
default state.
*/
func TestService_CreateArticle_Defaults(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.CreateArticle(context.Background(), &article.Article{
		Title:   "Go 1.25 Released!",
		Content: "Release notes",
	})
	require.NoError(t, err)

	assert.Equal(t, "go-1-25-released", created.Slug)
	assert.Equal(t, article.StateDraft, created.State)
	assert.Equal(t, 0, created.Views)
	assert.NotZero(t, created.CreatedAt)
}

/*
TestService_CreateArticle_Validation covers the create-time rules.
*/
func TestService_CreateArticle_Validation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	t.Run("missing_title", func(t *testing.T) {
		_, err := service.CreateArticle(ctx, &article.Article{Content: "body"})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("bad_state", func(t *testing.T) {
		_, err := service.CreateArticle(ctx, &article.Article{Title: "T", State: "limbo"})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("duplicate_slug", func(t *testing.T) {
		_, err := service.CreateArticle(ctx, &article.Article{Title: "Unique Piece", Content: "body"})
		require.NoError(t, err)

		_, err = service.CreateArticle(ctx, &article.Article{Title: "Another", Content: "body", Slug: "unique-piece"})
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})
}

/*
TestService_UpdateArticle_RevisionOnContentChange verifies edits snapshot the
previous content, and that title-only edits do not.
*/
func TestService_UpdateArticle_RevisionOnContentChange(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateArticle(ctx, &article.Article{Title: "Versioned", Content: "v1"})
	require.NoError(t, err)

	newTitle := "Versioned (edited)"
	_, err = service.UpdateArticle(ctx, created.ID, article.Patch{Title: &newTitle}, 7)
	require.NoError(t, err)

	revisions, err := service.ListRevisions(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, revisions, "non-content edits do not create revisions")

	newContent := "v2"
	_, err = service.UpdateArticle(ctx, created.ID, article.Patch{Content: &newContent}, 7)
	require.NoError(t, err)

	revisions, err = service.ListRevisions(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, revisions, 1)
	assert.Equal(t, "v1", revisions[0].Content, "the snapshot holds the pre-edit content")
	assert.Equal(t, 7, revisions[0].AuthorID)
}

/*
TestService_ApplyTransition_FailureLeavesStateUntouched is the core workflow
safety property: a rejected transition must not modify the stored article.
*/
func TestService_ApplyTransition_FailureLeavesStateUntouched(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateArticle(ctx, &article.Article{
		Title: "Workflow", Content: "body", Categories: []string{"AI"},
	})
	require.NoError(t, err)

	// draft → approve is illegal.
	_, err = service.ApplyTransition(ctx, created.ID, article.ActionApprove, nil)
	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.As(err).Code)

	stored, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, article.StateDraft, stored.State)
	assert.Nil(t, stored.PublishedAt)
}

/*
TestService_ApplyTransition_FullLifecycle walks draft → pending_review →
approved → published through the service.
*/
func TestService_ApplyTransition_FullLifecycle(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateArticle(ctx, &article.Article{
		Title: "Lifecycle", Content: "body", Categories: []string{"Programming"},
	})
	require.NoError(t, err)

	submitted, err := service.ApplyTransition(ctx, created.ID, article.ActionSubmit, nil)
	require.NoError(t, err)
	assert.Equal(t, article.StatePendingReview, submitted.State)

	approved, err := service.ApplyTransition(ctx, created.ID, article.ActionApprove, nil)
	require.NoError(t, err)
	assert.Equal(t, article.StateApproved, approved.State)

	published, err := service.ApplyTransition(ctx, created.ID, article.ActionPublish, nil)
	require.NoError(t, err)
	assert.Equal(t, article.StatePublished, published.State)
	require.NotNil(t, published.PublishedAt)
}

/*
TestService_ApplyTransition_Schedule verifies the staged schedule date flows
through to the stored article.
*/
func TestService_ApplyTransition_Schedule(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateArticle(ctx, &article.Article{
		Title: "Scheduled Piece", Content: "body", Categories: []string{"Startups"},
	})
	require.NoError(t, err)

	future := time.Now().UTC().Add(48 * time.Hour)
	scheduled, err := service.ApplyTransition(ctx, created.ID, article.ActionSchedule, &future)
	require.NoError(t, err)

	assert.Equal(t, article.StateScheduled, scheduled.State)
	require.NotNil(t, scheduled.ScheduledPublish)
	assert.WithinDuration(t, future, *scheduled.ScheduledPublish, time.Second)
}

/*
TestService_ListArticles checks pagination metadata arithmetic.
*/
func TestService_ListArticles(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := service.CreateArticle(ctx, &article.Article{
			Title:   "Listing " + string(rune('A'+i)),
			Content: "body",
		})
		require.NoError(t, err)
	}

	items, meta, err := service.ListArticles(ctx, article.Filter{}, pagination.Params{Page: 2, Limit: 3})
	require.NoError(t, err)

	assert.Len(t, items, 3)
	assert.Equal(t, 7, meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
}

/*
TestService_DeleteArticle verifies delete signals absence on repeat.
*/
func TestService_DeleteArticle(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateArticle(ctx, &article.Article{Title: "Gone", Content: "body"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteArticle(ctx, created.ID))

	err = service.DeleteArticle(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	_, err = service.ListRevisions(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err), "revision listing of a deleted article is NOT_FOUND")
}

/*
TestService_RecordView bumps the counter through the service.
*/
func TestService_RecordView(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateArticle(ctx, &article.Article{Title: "Viewed", Content: "body"})
	require.NoError(t, err)

	require.NoError(t, service.RecordView(ctx, created.ID))
	require.NoError(t, service.RecordView(ctx, created.ID))
	require.NoError(t, service.RecordView(ctx, created.ID))

	stored, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Views)
}
