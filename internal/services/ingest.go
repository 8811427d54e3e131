package services

import (
	"fmt"
	"time"

	"geigermon/internal/database"
	"geigermon/internal/models"
)

// IngestService appends one sample row and one status row per sensor
// report. Both rows share the same sensor-reported time components and
// the same server-assigned timestamp, and are written in a single
// transaction so neither can exist without the other.
type IngestService struct {
	db  *database.DB
	loc *time.Location
	now func() time.Time
}

// NewIngestService creates a new IngestService. Timestamps are rendered
// in loc (Asia/Tokyo in the reference deployment).
func NewIngestService(db *database.DB, loc *time.Location) *IngestService {
	return &IngestService{db: db, loc: loc, now: time.Now}
}

// Ingest appends the sample/status row pair for a validated request and
// returns the server-assigned timestamp shared by both rows. Callers
// must run SaveDataRequest.Validate first; Ingest dereferences the
// payload fields.
func (s *IngestService) Ingest(req *models.SaveDataRequest) (string, error) {
	timestamp := s.now().In(s.loc).Format(time.RFC3339)
	data := req.Data
	status := req.Status

	conn := s.db.GetConn()
	tx, err := conn.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO data (year, month, day, hour, minute, second, tick, duration, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, *data.Year, *data.Month, *data.Day, *data.Hour, *data.Minute, *data.Second,
		*data.Ticks, *data.Duration, timestamp)
	if err != nil {
		return "", fmt.Errorf("failed to insert sample: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO status (year, month, day, hour, minute, second, solar_panel_voltage, solar_panel_boosted_voltage, battery_voltage, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, *data.Year, *data.Month, *data.Day, *data.Hour, *data.Minute, *data.Second,
		*status.SolarPanelVoltage, *status.SolarPanelBoostedVoltage, *status.BatteryVoltage, timestamp)
	if err != nil {
		return "", fmt.Errorf("failed to insert status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	fmt.Printf("[INGEST] Saved sample tick=%d duration=%d and status battery=%.2fV at %s\n",
		*data.Ticks, *data.Duration, *status.BatteryVoltage, timestamp)

	return timestamp, nil
}
