// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package account

import (
	"context"
	"log/slog"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/internal/platform/sec"
	"github.com/matthansbello/labarintech/internal/platform/validate"
)

// CreateUserInput carries the client-supplied fields for registration.
type CreateUserInput struct {
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	Password    string       `json:"password"`
	DisplayName string       `json:"displayName"`
	AvatarURL   string       `json:"avatar"`
	Bio         string       `json:"bio"`
	Role        sec.UserRole `json:"role"`
	ExternalID  string       `json:"externalId"`
}

// Service implements the account business logic.
//
// Username and email uniqueness are enforced here with lookup-then-create
// probes, mirroring the slug policy in the article service.
type Service struct {
	users  Repository
	logger *slog.Logger
}

// NewService creates the account service.
func NewService(users Repository, logger *slog.Logger) *Service {
	return &Service{users: users, logger: logger}
}

/*
CreateUser validates the input, hashes the password with bcrypt, and persists
the account.

Parameters:
  - ctx: context.Context
  - input: CreateUserInput (Role defaults to author when empty)

Returns:
  - *User: The persisted account, hash populated but never serialized
  - error: VALIDATION_ERROR or CONFLICT on a duplicate username/email
*/
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	if input.Role == "" {
		input.Role = sec.RoleAuthor
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, 3).
		MaxLen(FieldUsername, input.Username, 50).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 8).
		Custom(FieldRole, !input.Role.IsValid(), "Unknown role")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, apperr.Conflict("Username already taken")
	} else if !apperr.IsNotFound(err) {
		return nil, apperr.Internal(err)
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperr.Conflict("Email already registered")
	} else if !apperr.IsNotFound(err) {
		return nil, apperr.Internal(err)
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		Username:     input.Username,
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		AvatarURL:    input.AvatarURL,
		Bio:          input.Bio,
		Role:         input.Role,
		ExternalID:   input.ExternalID,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	s.logger.InfoContext(ctx, "user_created",
		slog.Int("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// GetUser returns the account with the given id.
func (s *Service) GetUser(ctx context.Context, id int) (*User, error) {
	return s.users.FindByID(ctx, id)
}

// FindByUsername returns the account matching the exact username.
func (s *Service) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.users.FindByUsername(ctx, username)
}

// FindByEmail returns the account matching the email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.users.FindByEmail(ctx, email)
}

// UpdateUser merges a partial patch into an existing account.
func (s *Service) UpdateUser(ctx context.Context, id int, patch Patch) (*User, error) {
	validator := &validate.Validator{}
	if patch.Email != nil {
		validator.Required(FieldEmail, *patch.Email).Email(FieldEmail, *patch.Email)
	}
	if patch.Role != nil {
		validator.Custom(FieldRole, !patch.Role.IsValid(), "Unknown role")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if patch.Email != nil {
		existing, err := s.users.FindByEmail(ctx, *patch.Email)
		if err == nil && existing.ID != id {
			return nil, apperr.Conflict("Email already registered")
		} else if err != nil && !apperr.IsNotFound(err) {
			return nil, apperr.Internal(err)
		}
	}

	updated, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user_updated", slog.Int("user_id", id))

	return updated, nil
}

// ChangePassword hashes and stores a new password for the account.
func (s *Service) ChangePassword(ctx context.Context, id int, password string) error {
	validator := &validate.Validator{}
	validator.Required(FieldPassword, password).MinLen(FieldPassword, password, 8)
	if err := validator.Err(); err != nil {
		return err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return apperr.Internal(err)
	}

	if _, err := s.users.Update(ctx, id, Patch{passwordHash: &hash}); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "user_password_changed", slog.Int("user_id", id))

	return nil
}
