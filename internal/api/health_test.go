// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestHealth_Liveness always reports ok regardless of dependencies.
*/
func TestHealth_Liveness(t *testing.T) {
	handler := &HealthHandler{}
	recorder := httptest.NewRecorder()

	handler.handleLiveness(recorder, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

/*
TestHealth_Readiness covers the three dependency situations: disabled,
reachable, and failing.
*/
func TestHealth_Readiness(t *testing.T) {
	pass := func(*http.Request) error { return nil }
	fail := func(*http.Request) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		handler    *HealthHandler
		wantStatus int
		wantState  string
		wantChecks map[string]string
	}{
		{
			"memory_mode",
			&HealthHandler{},
			http.StatusOK, "ready",
			map[string]string{"postgres": "disabled", "redis": "disabled"},
		},
		{
			"all_healthy",
			&HealthHandler{CheckDatabase: pass, CheckCache: pass},
			http.StatusOK, "ready",
			map[string]string{"postgres": "ok", "redis": "ok"},
		},
		{
			"database_down",
			&HealthHandler{CheckDatabase: fail, CheckCache: pass},
			http.StatusServiceUnavailable, "degraded",
			map[string]string{"postgres": "unreachable", "redis": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			tt.handler.handleReadiness(recorder, httptest.NewRequest("GET", "/ready", nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body healthResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantState, body.Status)
			assert.Equal(t, tt.wantChecks, body.Checks)
		})
	}
}
