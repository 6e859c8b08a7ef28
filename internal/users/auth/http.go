// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/matthansbello/labarintech/internal/platform/request"
	"github.com/matthansbello/labarintech/internal/platform/respond"
)

// Handler exposes the auth service over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates the auth HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/auth.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", h.handleLogin)
	router.Post("/refresh", h.handleRefresh)
	router.Post("/logout", h.handleLogout)

	return router
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) handleLogin(writer http.ResponseWriter, request *http.Request) {
	var credentials Credentials
	if err := requestutil.DecodeJSON(request, &credentials); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := h.service.Login(request.Context(), credentials)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pair)
}

func (h *Handler) handleRefresh(writer http.ResponseWriter, request *http.Request) {
	var body refreshRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := h.service.Refresh(request.Context(), body.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pair)
}

func (h *Handler) handleLogout(writer http.ResponseWriter, request *http.Request) {
	var body refreshRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := h.service.Logout(request.Context(), body.RefreshToken); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
