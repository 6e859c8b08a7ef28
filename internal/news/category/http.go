// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matthansbello/labarintech/internal/platform/middleware"
	requestutil "github.com/matthansbello/labarintech/internal/platform/request"
	"github.com/matthansbello/labarintech/internal/platform/respond"
	"github.com/matthansbello/labarintech/internal/platform/sec"
)

// Handler exposes the category service over HTTP.
//
// Reads are public; mutations are gated behind the editor role.
type Handler struct {
	service *Service
}

// NewHandler creates the category HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/categories.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.handleList)
	router.Get("/by-slug/{slug}", h.handleGetBySlug)
	router.Get("/{id}", h.handleGet)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleEditor))
		r.Post("/", h.handleCreate)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})

	return router
}

func (h *Handler) handleList(writer http.ResponseWriter, request *http.Request) {
	categories, err := h.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, categories)
}

func (h *Handler) handleGet(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := h.service.GetCategory(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (h *Handler) handleGetBySlug(writer http.ResponseWriter, request *http.Request) {
	found, err := h.service.GetCategoryBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (h *Handler) handleCreate(writer http.ResponseWriter, request *http.Request) {
	var category Category
	if err := requestutil.DecodeJSON(request, &category); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := h.service.CreateCategory(request.Context(), &category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
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

	updated, err := h.service.UpdateCategory(request.Context(), id, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (h *Handler) handleDelete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := h.service.DeleteCategory(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
