// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package article

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/matthansbello/labarintech/internal/platform/request"
	"github.com/matthansbello/labarintech/internal/platform/respond"
	"github.com/matthansbello/labarintech/internal/platform/validate"
	"github.com/matthansbello/labarintech/pkg/pagination"
)

// # HTTP Transport

// Handler exposes the article service over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates the article HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/articles.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.handleList)
	router.Post("/", h.handleCreate)
	router.Get("/by-slug/{slug}", h.handleGetBySlug)

	router.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Put("/", h.handleUpdate)
		r.Delete("/", h.handleDelete)
		r.Get("/revisions", h.handleRevisions)
		r.Post("/view", h.handleView)

		// Workflow actions share one handler; the action is bound per route.
		r.Post("/submit", h.handleTransition(ActionSubmit))
		r.Post("/approve", h.handleTransition(ActionApprove))
		r.Post("/publish", h.handleTransition(ActionPublish))
		r.Post("/schedule", h.handleTransition(ActionSchedule))
	})

	return router
}

// listResponse is the wire shape for article list endpoints.
type listResponse struct {
	Articles   []*Article `json:"articles"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
}

func (h *Handler) handleList(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{
		Category: request.URL.Query().Get("category"),
		Tag:      request.URL.Query().Get("tag"),
		Featured: request.URL.Query().Get("featured") == "true",
		State:    State(request.URL.Query().Get("state")),
	}

	articles, meta, err := h.service.ListArticles(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listResponse{
		Articles:   articles,
		Total:      meta.Total,
		Page:       meta.Page,
		TotalPages: meta.TotalPages,
	})
}

// HandleSearch serves GET /api/search?q=&limit=. It lives on the article
// handler because search only covers the published article collection.
func (h *Handler) HandleSearch(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get(FieldQuery)
	if query == "" {
		respond.Error(writer, request, validate.RequiredError(FieldQuery, "A search query is required"))
		return
	}

	limit, _ := strconv.Atoi(request.URL.Query().Get("limit"))

	articles, err := h.service.SearchArticles(request.Context(), query, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, articles)
}

func (h *Handler) handleGet(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := h.service.GetArticle(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (h *Handler) handleGetBySlug(writer http.ResponseWriter, request *http.Request) {
	found, err := h.service.GetArticleBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (h *Handler) handleCreate(writer http.ResponseWriter, request *http.Request) {
	var draft Article
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if claims := requestutil.Claims(request); claims != nil && draft.AuthorID == 0 {
		draft.AuthorID = claimUserID(claims.UserID)
	}

	created, err := h.service.CreateArticle(request.Context(), &draft)
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

	editorID := 0
	if claims := requestutil.Claims(request); claims != nil {
		editorID = claimUserID(claims.UserID)
	}

	updated, err := h.service.UpdateArticle(request.Context(), id, patch, editorID)
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

	if err := h.service.DeleteArticle(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// scheduleRequest is the body of POST /{id}/schedule.
type scheduleRequest struct {
	ScheduledPublish *time.Time `json:"scheduledPublish"`
}

// handleTransition returns a handler that applies the bound workflow action.
func (h *Handler) handleTransition(action Action) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, err := requestutil.IntID(request, "id")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		var scheduledAt *time.Time
		if action == ActionSchedule {
			var body scheduleRequest
			if err := requestutil.DecodeJSON(request, &body); err != nil {
				respond.Error(writer, request, err)
				return
			}
			scheduledAt = body.ScheduledPublish
		}

		updated, err := h.service.ApplyTransition(request.Context(), id, action, scheduledAt)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, updated)
	}
}

func (h *Handler) handleRevisions(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	revisions, err := h.service.ListRevisions(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, revisions)
}

func (h *Handler) handleView(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := h.service.RecordView(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// claimUserID converts the JWT subject back into a storage id; tokens minted
// by this service always carry a numeric uid.
func claimUserID(raw string) int {
	id, _ := strconv.Atoi(raw)
	return id
}
