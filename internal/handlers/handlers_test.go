package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"geigermon/internal/database"
	"geigermon/internal/services"

	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

// testEnv wires real services onto a temp-file database, the same way
// main does.
type testEnv struct {
	db      *database.DB
	ingest  *IngestHandler
	query   *QueryHandler
	metrics *MetricsHandler
	ota     *OTAHandler
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	return &testEnv{
		db:      db,
		ingest:  NewIngestHandler(services.NewIngestService(db, loc), testAPIKey),
		query:   NewQueryHandler(services.NewQueryService(db)),
		metrics: NewMetricsHandler(services.NewMetricsService(db)),
		ota:     NewOTAHandler(services.NewOTASwitch()),
	}
}

const validPayload = `{
	"status": {"solar_panel_voltage": 5.1, "solar_panel_boosted_voltage": 5.3, "battery_voltage": 4.0},
	"data": {"year": 2024, "month": 6, "day": 1, "hour": 12, "minute": 0, "second": 0, "ticks": 42, "duration": 60}
}`

func (e *testEnv) postSaveData(t *testing.T, body, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/savedata", strings.NewReader(body))
	if key != "" {
		req.Header.Set(APIKeyHeader, key)
	}
	w := httptest.NewRecorder()
	e.ingest.Handle(w, req)
	return w
}

func (e *testEnv) rowCounts(t *testing.T) (samples, statuses int) {
	require.NoError(t, e.db.GetConn().QueryRow("SELECT COUNT(*) FROM data").Scan(&samples))
	require.NoError(t, e.db.GetConn().QueryRow("SELECT COUNT(*) FROM status").Scan(&statuses))
	return samples, statuses
}
