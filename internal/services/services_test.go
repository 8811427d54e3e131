package services

import (
	"path/filepath"
	"testing"
	"time"

	"geigermon/internal/database"
	"geigermon/internal/models"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *database.DB {
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestIngestService(t *testing.T, db *database.DB) *IngestService {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return NewIngestService(db, loc)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func validRequest() *models.SaveDataRequest {
	return &models.SaveDataRequest{
		Status: &models.StatusPayload{
			SolarPanelVoltage:        floatPtr(5.1),
			SolarPanelBoostedVoltage: floatPtr(5.3),
			BatteryVoltage:           floatPtr(4.0),
		},
		Data: &models.DataPayload{
			Year:     intPtr(2024),
			Month:    intPtr(6),
			Day:      intPtr(1),
			Hour:     intPtr(12),
			Minute:   intPtr(0),
			Second:   intPtr(0),
			Ticks:    intPtr(42),
			Duration: intPtr(60),
		},
	}
}
