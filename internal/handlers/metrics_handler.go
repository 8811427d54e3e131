package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"geigermon/internal/services"
)

// MetricsHandler handles GET /metrics requests
type MetricsHandler struct {
	metricsService *services.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler instance
func NewMetricsHandler(metricsService *services.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

// Handle renders the latest-value gauge report as plain text.
func (h *MetricsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.metricsService.Snapshot()
	if err != nil {
		if errors.Is(err, services.ErrNoData) {
			http.Error(w, "No data available", http.StatusNotFound)
			return
		}
		fmt.Printf("[API] GET /metrics - query failure: %v\n", err)
		http.Error(w, "Failed to build metrics", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, snapshot)
}
