package services

import (
	"fmt"

	"geigermon/internal/database"
	"geigermon/internal/models"
)

// QueryService handles read-only queries over the two record streams.
type QueryService struct {
	db *database.DB
}

// NewQueryService creates a new QueryService instance
func NewQueryService(db *database.DB) *QueryService {
	return &QueryService{db: db}
}

// AllSamples returns every sample record in insertion (id) order.
func (q *QueryService) AllSamples() ([]models.SampleRecord, error) {
	rows, err := q.db.GetConn().Query(`
		SELECT id, year, month, day, hour, minute, second, tick, duration, timestamp
		FROM data ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	samples := []models.SampleRecord{}
	for rows.Next() {
		var s models.SampleRecord
		if err := rows.Scan(&s.ID, &s.Year, &s.Month, &s.Day, &s.Hour, &s.Minute, &s.Second,
			&s.Tick, &s.Duration, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan sample row: %w", err)
		}
		samples = append(samples, s)
	}

	return samples, rows.Err()
}

// AllStatus returns every status record in insertion (id) order.
func (q *QueryService) AllStatus() ([]models.StatusRecord, error) {
	rows, err := q.db.GetConn().Query(`
		SELECT id, year, month, day, hour, minute, second, solar_panel_voltage, solar_panel_boosted_voltage, battery_voltage, timestamp
		FROM status ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query status: %w", err)
	}
	defer rows.Close()

	statuses := []models.StatusRecord{}
	for rows.Next() {
		var s models.StatusRecord
		if err := rows.Scan(&s.ID, &s.Year, &s.Month, &s.Day, &s.Hour, &s.Minute, &s.Second,
			&s.SolarPanelVoltage, &s.SolarPanelBoostedVoltage, &s.BatteryVoltage, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan status row: %w", err)
		}
		statuses = append(statuses, s)
	}

	return statuses, rows.Err()
}

// SamplesByHour returns the sample records whose stored hour field
// equals hour, in insertion (id) order.
func (q *QueryService) SamplesByHour(hour int) ([]models.SampleRecord, error) {
	rows, err := q.db.GetConn().Query(`
		SELECT id, year, month, day, hour, minute, second, tick, duration, timestamp
		FROM data WHERE hour = ? ORDER BY id
	`, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples by hour: %w", err)
	}
	defer rows.Close()

	samples := []models.SampleRecord{}
	for rows.Next() {
		var s models.SampleRecord
		if err := rows.Scan(&s.ID, &s.Year, &s.Month, &s.Day, &s.Hour, &s.Minute, &s.Second,
			&s.Tick, &s.Duration, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan sample row: %w", err)
		}
		samples = append(samples, s)
	}

	return samples, rows.Err()
}
