// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package account

import "context"

// Repository defines the data access contract for user accounts.
type Repository interface {

	// FindByID returns the user with the given id.
	FindByID(ctx context.Context, id int) (*User, error)

	// FindByUsername returns the user matching the exact username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmail returns the user matching the email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a new user, assigning the next sequential id and
	// stamping the timestamps onto the passed entity.
	Create(ctx context.Context, user *User) error

	// Update merges the patch over the stored record and stamps updatedAt.
	Update(ctx context.Context, id int, patch Patch) (*User, error)
}
