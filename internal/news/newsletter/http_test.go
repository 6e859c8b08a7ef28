// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package newsletter_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthansbello/labarintech/internal/news/newsletter"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := newsletter.NewService(newsletter.NewMemoryStore(), logger)

	router := chi.NewRouter()
	router.Mount("/api/newsletter", newsletter.NewHandler(service).Routes())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	response, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)

	return response
}

/*
TestHTTP_Subscribe verifies the wire shape of a new subscription: the name
and confirmation flag round-trip, and the payload uses the subscriber field
names the clients expect.
*/
func TestHTTP_Subscribe(t *testing.T) {
	server := newTestServer(t)

	response := postJSON(t, server.URL+"/api/newsletter/subscribe", map[string]any{
		"email":     "reader@example.com",
		"name":      "Ada Reader",
		"confirmed": true,
	})
	defer response.Body.Close()

	require.Equal(t, http.StatusCreated, response.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(response.Body).Decode(&payload))

	assert.Equal(t, "reader@example.com", payload["email"])
	assert.Equal(t, "Ada Reader", payload["name"])
	assert.Equal(t, true, payload["confirmed"])
	assert.Equal(t, false, payload["unsubscribed"])
	assert.Contains(t, payload, "subscriptionDate")
}

/*
TestHTTP_Unsubscribe covers the idempotent unsubscribe and the unknown-email
404.
*/
func TestHTTP_Unsubscribe(t *testing.T) {
	server := newTestServer(t)

	response := postJSON(t, server.URL+"/api/newsletter/subscribe", map[string]any{
		"email": "flip@example.com",
	})
	response.Body.Close()
	require.Equal(t, http.StatusCreated, response.StatusCode)

	response = postJSON(t, server.URL+"/api/newsletter/unsubscribe", map[string]any{
		"email": "flip@example.com",
	})
	response.Body.Close()
	assert.Equal(t, http.StatusNoContent, response.StatusCode)

	// Repeating it succeeds even though the record is already unsubscribed.
	response = postJSON(t, server.URL+"/api/newsletter/unsubscribe", map[string]any{
		"email": "flip@example.com",
	})
	response.Body.Close()
	assert.Equal(t, http.StatusNoContent, response.StatusCode)

	response = postJSON(t, server.URL+"/api/newsletter/unsubscribe", map[string]any{
		"email": "ghost@example.com",
	})
	response.Body.Close()
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}
