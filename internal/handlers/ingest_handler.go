package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"geigermon/internal/models"
	"geigermon/internal/services"
)

// APIKeyHeader is the header the sensor presents its credential in.
const APIKeyHeader = "x-api-key"

// IngestHandler handles POST /savedata requests
type IngestHandler struct {
	ingestService *services.IngestService
	apiKey        string
}

// NewIngestHandler creates a new IngestHandler instance
func NewIngestHandler(ingestService *services.IngestService, apiKey string) *IngestHandler {
	return &IngestHandler{ingestService: ingestService, apiKey: apiKey}
}

// Handle handles the ingestion request
func (h *IngestHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	presented := r.Header.Get(APIKeyHeader)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(h.apiKey)) != 1 {
		fmt.Printf("[API] POST /savedata - unauthorized from %s\n", r.RemoteAddr)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.SaveDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	timestamp, err := h.ingestService.Ingest(&req)
	if err != nil {
		fmt.Printf("[API] POST /savedata - storage failure: %v\n", err)
		http.Error(w, "Failed to save data", http.StatusInternalServerError)
		return
	}

	fmt.Printf("[API] POST /savedata - saved at %s\n", timestamp)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Data saved successfully")
}
