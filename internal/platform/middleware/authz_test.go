// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthansbello/labarintech/internal/platform/middleware"
	"github.com/matthansbello/labarintech/internal/platform/sec"
)

// fakeVerifier maps one literal token to fixed claims.
type fakeVerifier struct {
	claims *sec.AuthClaims
}

func (v fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == "good-token" {
		return v.claims, nil
	}
	return nil, assert.AnError
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate covers anonymous pass-through, malformed headers, and the
verified path.
*/
func TestAuthenticate(t *testing.T) {
	verifier := fakeVerifier{claims: &sec.AuthClaims{UserID: "1", Role: "editor"}}
	handler := middleware.Authenticate(verifier)(okHandler())

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"anonymous", "", http.StatusOK},
		{"malformed", "Token abc", http.StatusUnauthorized},
		{"bad_token", "Bearer bad-token", http.StatusUnauthorized},
		{"valid", "Bearer good-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}

/*
TestRequireRole checks the authenticated-and-authorized matrix behind the
editor-gated routes.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"author_blocked", "author", http.StatusForbidden},
		{"editor_allowed", "editor", http.StatusOK},
		{"admin_allowed", "admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var chain http.Handler = middleware.RequireRole(sec.RoleEditor)(okHandler())
			if tt.role != "" {
				verifier := fakeVerifier{claims: &sec.AuthClaims{UserID: "1", Role: tt.role}}
				chain = middleware.Authenticate(verifier)(chain)
			}

			request := httptest.NewRequest("POST", "/api/categories", nil)
			if tt.role != "" {
				request.Header.Set("Authorization", "Bearer good-token")
			}
			recorder := httptest.NewRecorder()

			chain.ServeHTTP(recorder, request)
			require.Equal(t, tt.want, recorder.Code)
		})
	}
}
