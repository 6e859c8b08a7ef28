// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package category

import "context"

// Repository defines the data access contract for categories.
//
// Absence is always a signaled [apperr.AppError] (NOT_FOUND), never a panic.
type Repository interface {

	// FindByID returns the category with the given id.
	FindByID(ctx context.Context, id int) (*Category, error)

	// FindBySlug returns the category matching the unique URL identifier.
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// FindAll returns every category in ascending id order.
	FindAll(ctx context.Context) ([]*Category, error)

	// Create persists a new category, assigning the next sequential id and
	// stamping the timestamps onto the passed entity.
	Create(ctx context.Context, category *Category) error

	// Update merges the patch over the stored record and stamps updatedAt.
	Update(ctx context.Context, id int, patch Patch) (*Category, error)

	// Delete removes the category. The bool reports whether anything was
	// deleted; a missing id is not an error.
	Delete(ctx context.Context, id int) (bool, error)
}
