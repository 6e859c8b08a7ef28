// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package category

import (
	"context"
	"log/slog"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/internal/platform/validate"
	"github.com/matthansbello/labarintech/pkg/slug"
)

// defaultCategories seeds a fresh installation with the newsroom's standard
// taxonomy.
var defaultCategories = []Category{
	{Name: "Programming", Slug: "programming", Description: "Software development, languages, and tooling"},
	{Name: "AI", Slug: "ai", Description: "Artificial intelligence and machine learning"},
	{Name: "Mobile", Slug: "mobile", Description: "Mobile platforms, apps, and devices"},
	{Name: "Hardware", Slug: "hardware", Description: "Chips, gadgets, and physical computing"},
	{Name: "Startups", Slug: "startups", Description: "Founders, funding, and the startup economy"},
	{Name: "Education", Slug: "education", Description: "Learning, teaching, and edtech"},
}

// Service implements the taxonomy business logic.
//
// Acyclicity of the parent tree is enforced here with an ancestor walk on
// every create and reparent, so neither storage engine needs to know about
// the tree shape.
type Service struct {
	categories Repository
	logger     *slog.Logger
}

// NewService creates the category service.
func NewService(categories Repository, logger *slog.Logger) *Service {
	return &Service{categories: categories, logger: logger}
}

// EnsureDefaults seeds the standard categories once. It is idempotent:
// categories whose slug already exists are left untouched.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	for _, seed := range defaultCategories {
		_, err := s.categories.FindBySlug(ctx, seed.Slug)
		if err == nil {
			continue
		}
		if !apperr.IsNotFound(err) {
			return err
		}

		category := seed
		if err := s.categories.Create(ctx, &category); err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "categories_seeded", slog.Int("count", len(defaultCategories)))

	return nil
}

// ListCategories returns all categories in ascending id order.
func (s *Service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.categories.FindAll(ctx)
}

// GetCategory returns the category with the given id.
func (s *Service) GetCategory(ctx context.Context, id int) (*Category, error) {
	return s.categories.FindByID(ctx, id)
}

// GetCategoryBySlug returns the category matching the URL slug.
func (s *Service) GetCategoryBySlug(ctx context.Context, slugValue string) (*Category, error) {
	return s.categories.FindBySlug(ctx, slugValue)
}

// CreateCategory validates and persists a new taxonomy node.
func (s *Service) CreateCategory(ctx context.Context, category *Category) (*Category, error) {
	if category.Slug == "" && category.Name != "" {
		category.Slug = slug.From(category.Name)
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldName, category.Name).
		MaxLen(FieldName, category.Name, 100).
		Required(FieldSlug, category.Slug)
	if category.Slug != "" {
		validator.Slug(FieldSlug, category.Slug)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := s.ensureSlugFree(ctx, category.Slug, 0); err != nil {
		return nil, err
	}

	if category.ParentID != nil {
		if _, err := s.categories.FindByID(ctx, *category.ParentID); err != nil {
			return nil, validate.RequiredError(FieldParentID, "Parent category does not exist")
		}
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperr.Internal(err)
	}

	s.logger.InfoContext(ctx, "category_created",
		slog.Int("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// UpdateCategory merges a partial patch, re-validating slug uniqueness and
// tree acyclicity when those fields change.
func (s *Service) UpdateCategory(ctx context.Context, id int, patch Patch) (*Category, error) {
	current, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if patch.Name != nil {
		validator.Required(FieldName, *patch.Name).MaxLen(FieldName, *patch.Name, 100)
	}
	if patch.Slug != nil {
		validator.Required(FieldSlug, *patch.Slug).Slug(FieldSlug, *patch.Slug)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if patch.Slug != nil && *patch.Slug != current.Slug {
		if err := s.ensureSlugFree(ctx, *patch.Slug, id); err != nil {
			return nil, err
		}
	}

	if patch.ParentID != nil && !patch.ClearParent {
		if err := s.ensureAcyclic(ctx, id, *patch.ParentID); err != nil {
			return nil, err
		}
	}

	updated, err := s.categories.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "category_updated", slog.Int("category_id", id))

	return updated, nil
}

// DeleteCategory removes the category; its children are re-rooted by the
// storage engine.
func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound("Category")
	}

	s.logger.InfoContext(ctx, "category_deleted", slog.Int("category_id", id))

	return nil
}

// ensureAcyclic walks the ancestor chain from parentID and fails if it ever
// reaches id. The walk is bounded by the category count, so a pre-existing
// corrupt cycle cannot hang it.
func (s *Service) ensureAcyclic(ctx context.Context, id, parentID int) error {
	if parentID == id {
		return validate.RequiredError(FieldParentID, "A category cannot be its own parent")
	}

	all, err := s.categories.FindAll(ctx)
	if err != nil {
		return apperr.Internal(err)
	}

	parents := make(map[int]*int, len(all))
	for _, category := range all {
		parents[category.ID] = category.ParentID
	}
	if _, ok := parents[parentID]; !ok {
		return validate.RequiredError(FieldParentID, "Parent category does not exist")
	}

	ancestor := &parentID
	for steps := 0; ancestor != nil && steps <= len(all); steps++ {
		if *ancestor == id {
			return validate.RequiredError(FieldParentID, "Reparenting would create a cycle")
		}
		ancestor = parents[*ancestor]
	}

	return nil
}

func (s *Service) ensureSlugFree(ctx context.Context, slugValue string, excludeID int) error {
	existing, err := s.categories.FindBySlug(ctx, slugValue)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return apperr.Internal(err)
	}
	if existing.ID != excludeID {
		return apperr.Conflict("A category with this slug already exists")
	}

	return nil
}
