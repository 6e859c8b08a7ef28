// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package auth

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/internal/platform/constants"
	"github.com/matthansbello/labarintech/internal/platform/sec"
	"github.com/matthansbello/labarintech/internal/platform/validate"
	"github.com/matthansbello/labarintech/internal/users/account"
	"github.com/matthansbello/labarintech/pkg/uuidv7"
)

// Credentials is the login request payload. Login accepts the username field
// holding either a username or an email address.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair is the login/refresh response payload.
type TokenPair struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresIn    int           `json:"expiresIn"` // Access token lifetime in seconds
	User         *account.User `json:"user"`
}

// Service implements login, refresh, and logout.
type Service struct {
	accounts *account.Service
	sessions SessionRepository
	tokens   *sec.TokenService
	logger   *slog.Logger

	now func() time.Time
}

// NewService creates the auth service.
func NewService(accounts *account.Service, sessions SessionRepository, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

/*
Login verifies credentials and opens a refresh session.

Description: The username field is matched against usernames first, then
emails. Unknown accounts and bad passwords return the same UNAUTHORIZED
message so the endpoint does not leak which accounts exist.

Returns:
  - *TokenPair: Access token, refresh token, and the authenticated user
  - error: VALIDATION_ERROR or UNAUTHORIZED
*/
func (s *Service) Login(ctx context.Context, credentials Credentials) (*TokenPair, error) {
	validator := &validate.Validator{}
	validator.
		Required(account.FieldUsername, credentials.Username).
		Required(account.FieldPassword, credentials.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := s.accounts.FindByUsername(ctx, credentials.Username)
	if apperr.IsNotFound(err) {
		user, err = s.accounts.FindByEmail(ctx, credentials.Username)
	}
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, apperr.Internal(err)
	}

	if !sec.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	pair, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user_logged_in", slog.Int("user_id", user.ID))

	return pair, nil
}

/*
Refresh rotates a refresh session into a fresh token pair.

Description: The presented session is revoked and replaced, so a stolen
refresh token stops working the moment the legitimate client refreshes.
*/
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, apperr.Unauthorized("Refresh token required")
	}

	session, err := s.sessions.Find(ctx, refreshToken)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid or expired session")
		}
		return nil, apperr.Internal(err)
	}

	user, err := s.accounts.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return nil, apperr.Internal(err)
	}

	pair, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "session_refreshed", slog.Int("user_id", user.ID))

	return pair, nil
}

// Logout revokes the refresh session. Unknown tokens are a silent no-op so
// logout is idempotent.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, refreshToken); err != nil {
		return apperr.Internal(err)
	}

	s.logger.InfoContext(ctx, "user_logged_out")

	return nil
}

// openSession mints an access token and persists a new refresh session.
func (s *Service) openSession(ctx context.Context, user *account.User) (*TokenPair, error) {
	accessToken, err := s.tokens.GenerateAccessToken(
		strconv.Itoa(user.ID), user.Username, string(user.Role), constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := s.now()
	session := &Session{
		ID:        uuidv7.New(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(constants.SessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, apperr.Internal(err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: session.ID,
		ExpiresIn:    int(constants.AccessTokenTTL.Seconds()),
		User:         user,
	}, nil
}
