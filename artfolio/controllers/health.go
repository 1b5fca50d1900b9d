package controllers

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthController struct {
	backend string
	started time.Time
}

func NewHealthController(backend string) *HealthController {
	return &HealthController{backend: backend, started: time.Now()}
}

func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"status":         "ok",
		"store":          h.backend,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}
