// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package category_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthansbello/labarintech/internal/news/category"
	"github.com/matthansbello/labarintech/internal/platform/apperr"
)

func newTestService(t *testing.T) *category.Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return category.NewService(category.NewMemoryStore(), logger)
}

/*
TestService_EnsureDefaults_Idempotent verifies seeding creates the six
standard categories exactly once.
*/
func TestService_EnsureDefaults_Idempotent(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.EnsureDefaults(ctx))
	require.NoError(t, service.EnsureDefaults(ctx))

	all, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	programming, err := service.GetCategoryBySlug(ctx, "programming")
	require.NoError(t, err)
	assert.Equal(t, "Programming", programming.Name)
}

/*
TestService_CreateCategory covers slug derivation and duplicate rejection.
*/
func TestService_CreateCategory(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateCategory(ctx, &category.Category{Name: "Open Source"})
	require.NoError(t, err)
	assert.Equal(t, "open-source", created.Slug)

	_, err = service.CreateCategory(ctx, &category.Category{Name: "Also Open Source", Slug: "open-source"})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	_, err = service.CreateCategory(ctx, &category.Category{})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_ParentAcyclicity checks self-parenting and ancestor cycles are
rejected while legitimate reparenting works.
*/
func TestService_ParentAcyclicity(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	root, err := service.CreateCategory(ctx, &category.Category{Name: "Tech"})
	require.NoError(t, err)
	child, err := service.CreateCategory(ctx, &category.Category{Name: "Cloud", ParentID: &root.ID})
	require.NoError(t, err)
	grandchild, err := service.CreateCategory(ctx, &category.Category{Name: "Serverless", ParentID: &child.ID})
	require.NoError(t, err)

	t.Run("self_parent", func(t *testing.T) {
		_, err := service.UpdateCategory(ctx, root.ID, category.Patch{ParentID: &root.ID})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("ancestor_cycle", func(t *testing.T) {
		// Tech under Serverless would close the loop Tech→Cloud→Serverless→Tech.
		_, err := service.UpdateCategory(ctx, root.ID, category.Patch{ParentID: &grandchild.ID})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("legal_reparent", func(t *testing.T) {
		updated, err := service.UpdateCategory(ctx, grandchild.ID, category.Patch{ParentID: &root.ID})
		require.NoError(t, err)
		require.NotNil(t, updated.ParentID)
		assert.Equal(t, root.ID, *updated.ParentID)
	})

	t.Run("missing_parent", func(t *testing.T) {
		missing := 999
		_, err := service.UpdateCategory(ctx, child.ID, category.Patch{ParentID: &missing})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestService_DeleteCategory_RerootsChildren verifies children of a deleted
node are detached, not removed.
*/
func TestService_DeleteCategory_RerootsChildren(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	parent, err := service.CreateCategory(ctx, &category.Category{Name: "Parent"})
	require.NoError(t, err)
	child, err := service.CreateCategory(ctx, &category.Category{Name: "Child", ParentID: &parent.ID})
	require.NoError(t, err)

	require.NoError(t, service.DeleteCategory(ctx, parent.ID))

	survivor, err := service.GetCategory(ctx, child.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.ParentID)

	err = service.DeleteCategory(ctx, parent.ID)
	assert.True(t, apperr.IsNotFound(err))
}
