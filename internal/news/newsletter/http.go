// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package newsletter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/matthansbello/labarintech/internal/platform/request"
	"github.com/matthansbello/labarintech/internal/platform/respond"
)

// Handler exposes the newsletter service over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates the newsletter HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/newsletter.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/subscribe", h.handleSubscribe)
	router.Post("/unsubscribe", h.handleUnsubscribe)

	return router
}

type subscribeRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Confirmed bool   `json:"confirmed"`
}

type unsubscribeRequest struct {
	Email string `json:"email"`
}

func (h *Handler) handleSubscribe(writer http.ResponseWriter, request *http.Request) {
	var body subscribeRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	subscriber, err := h.service.Subscribe(request.Context(), &Subscriber{
		Email:     body.Email,
		Name:      body.Name,
		Confirmed: body.Confirmed,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, subscriber)
}

func (h *Handler) handleUnsubscribe(writer http.ResponseWriter, request *http.Request) {
	var body unsubscribeRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := h.service.Unsubscribe(request.Context(), body.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
