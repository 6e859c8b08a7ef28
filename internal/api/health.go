// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package api

import (
	"net/http"

	"github.com/matthansbello/labarintech/internal/platform/constants"
	"github.com/matthansbello/labarintech/internal/platform/respond"
)

// HealthHandler serves the liveness and readiness probes.
//
// Dependency checks are optional: a nil check means the dependency is not
// configured (memory mode) and is reported as "disabled" rather than failing
// the probe.
type HealthHandler struct {
	CheckDatabase func(r *http.Request) error
	CheckCache    func(r *http.Request) error
}

type healthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// handleLiveness reports that the process is up. It never checks
// dependencies; a live-but-degraded server should not be restarted.
func (h *HealthHandler) handleLiveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, healthResponse{
		Status:  "ok",
		Version: constants.AppVersion,
	})
}

// handleReadiness reports whether the server can serve traffic, probing each
// configured dependency.
func (h *HealthHandler) handleReadiness(writer http.ResponseWriter, request *http.Request) {
	checks := map[string]string{}
	healthy := true

	check := func(name string, probe func(r *http.Request) error) {
		if probe == nil {
			checks[name] = "disabled"
			return
		}
		if err := probe(request); err != nil {
			checks[name] = "unreachable"
			healthy = false
			return
		}
		checks[name] = "ok"
	}

	check("postgres", h.CheckDatabase)
	check("redis", h.CheckCache)

	status := http.StatusOK
	body := healthResponse{Status: "ready", Version: constants.AppVersion, Checks: checks}
	if !healthy {
		status = http.StatusServiceUnavailable
		body.Status = "degraded"
	}

	respond.JSON(writer, status, body)
}
