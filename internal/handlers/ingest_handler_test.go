package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"geigermon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestHappyPath(t *testing.T) {
	env := newTestEnv(t)

	w := env.postSaveData(t, validPayload, testAPIKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Data saved successfully", w.Body.String())

	samples, statuses := env.rowCounts(t)
	assert.Equal(t, 1, samples)
	assert.Equal(t, 1, statuses)
}

func TestIngestThenQueryRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	w := env.postSaveData(t, validPayload, testAPIKey)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/alldata", nil)
	w = httptest.NewRecorder()
	env.query.AllData(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var samples []models.SampleRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &samples))
	require.Len(t, samples, 1)
	assert.Equal(t, 42, samples[0].Tick)
	assert.Equal(t, 60, samples[0].Duration)
	assert.Equal(t, 2024, samples[0].Year)
	assert.NotEmpty(t, samples[0].Timestamp)
}

func TestIngestWrongKey(t *testing.T) {
	env := newTestEnv(t)

	w := env.postSaveData(t, validPayload, "wrong-key")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Store state unchanged.
	samples, statuses := env.rowCounts(t)
	assert.Equal(t, 0, samples)
	assert.Equal(t, 0, statuses)
}

func TestIngestMissingKey(t *testing.T) {
	env := newTestEnv(t)

	w := env.postSaveData(t, validPayload, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIngestMissingTicksField(t *testing.T) {
	env := newTestEnv(t)

	payload := `{
		"status": {"solar_panel_voltage": 5.1, "solar_panel_boosted_voltage": 5.3, "battery_voltage": 4.0},
		"data": {"year": 2024, "month": 6, "day": 1, "hour": 12, "minute": 0, "second": 0, "duration": 60}
	}`
	w := env.postSaveData(t, payload, testAPIKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "data.ticks")

	// No partial write.
	samples, statuses := env.rowCounts(t)
	assert.Equal(t, 0, samples)
	assert.Equal(t, 0, statuses)
}

func TestIngestMissingStatusObject(t *testing.T) {
	env := newTestEnv(t)

	payload := `{"data": {"year": 2024, "month": 6, "day": 1, "hour": 12, "minute": 0, "second": 0, "ticks": 42, "duration": 60}}`
	w := env.postSaveData(t, payload, testAPIKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "status")
}

func TestIngestMalformedJSON(t *testing.T) {
	env := newTestEnv(t)

	w := env.postSaveData(t, "{not json", testAPIKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
