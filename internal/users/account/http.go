// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matthansbello/labarintech/internal/platform/middleware"
	requestutil "github.com/matthansbello/labarintech/internal/platform/request"
	"github.com/matthansbello/labarintech/internal/platform/respond"
	"github.com/matthansbello/labarintech/internal/platform/sec"
)

// Handler exposes the account service over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates the account HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/users.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.handleCreate)
	router.Get("/{id}", h.handleGet)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Put("/{id}", h.handleUpdate)
	})

	return router
}

func (h *Handler) handleCreate(writer http.ResponseWriter, request *http.Request) {
	var input CreateUserInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Privileged roles cannot be self-assigned at registration.
	if input.Role != "" && input.Role != sec.RoleAuthor {
		claims := requestutil.Claims(request)
		if claims == nil || !sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin) {
			input.Role = sec.RoleAuthor
		}
	}

	user, err := h.service.CreateUser(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

func (h *Handler) handleGet(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := h.service.GetUser(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

func (h *Handler) handleUpdate(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := h.service.UpdateUser(request.Context(), id, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}
