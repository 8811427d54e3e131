package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"geigermon/internal/services"
)

// QueryHandler handles the unauthenticated read endpoints:
// GET /alldata, GET /allstatus and GET /data?hour=N.
type QueryHandler struct {
	queryService *services.QueryService
}

// NewQueryHandler creates a new QueryHandler instance
func NewQueryHandler(queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{queryService: queryService}
}

// AllData returns the full sample history as a JSON array.
func (h *QueryHandler) AllData(w http.ResponseWriter, r *http.Request) {
	samples, err := h.queryService.AllSamples()
	if err != nil {
		fmt.Printf("[API] GET /alldata - query failure: %v\n", err)
		http.Error(w, "Failed to query data", http.StatusInternalServerError)
		return
	}

	fmt.Printf("[API] GET /alldata - %d records\n", len(samples))
	writeJSON(w, samples)
}

// AllStatus returns the full status history as a JSON array.
func (h *QueryHandler) AllStatus(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.queryService.AllStatus()
	if err != nil {
		fmt.Printf("[API] GET /allstatus - query failure: %v\n", err)
		http.Error(w, "Failed to query status", http.StatusInternalServerError)
		return
	}

	fmt.Printf("[API] GET /allstatus - %d records\n", len(statuses))
	writeJSON(w, statuses)
}

// DataByHour returns the samples whose stored hour field equals the
// hour query parameter. The parameter is coerced string-to-int at this
// boundary; missing or non-integer values are a 400, not an empty
// result.
func (h *QueryHandler) DataByHour(w http.ResponseWriter, r *http.Request) {
	hourStr := r.URL.Query().Get("hour")
	if hourStr == "" {
		http.Error(w, "Missing hour parameter", http.StatusBadRequest)
		return
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		http.Error(w, "Invalid hour parameter", http.StatusBadRequest)
		return
	}

	samples, err := h.queryService.SamplesByHour(hour)
	if err != nil {
		fmt.Printf("[API] GET /data - query failure: %v\n", err)
		http.Error(w, "Failed to query data", http.StatusInternalServerError)
		return
	}

	fmt.Printf("[API] GET /data - hour=%d, %d records\n", hour, len(samples))
	writeJSON(w, samples)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
