package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"geigermon/internal/database"
	"geigermon/internal/models"
)

// SensorID is the static label value on every gauge line. The external
// scraper matches it literally.
const SensorID = "GeigerCounter1"

// ErrNoData is returned by Snapshot when either record stream is empty.
var ErrNoData = errors.New("no data available")

// MetricsService projects the most recent sample and status rows into a
// flat plain-text gauge report. The two rows are "latest of each", not
// "latest shared ingestion": if one stream has more rows than the other
// the report still mixes the newest of each.
type MetricsService struct {
	db *database.DB
}

// NewMetricsService creates a new MetricsService instance
func NewMetricsService(db *database.DB) *MetricsService {
	return &MetricsService{db: db}
}

// Snapshot renders one gauge line per field in fixed order. The line
// format and field order are a compatibility contract; do not reorder.
func (m *MetricsService) Snapshot() (string, error) {
	conn := m.db.GetConn()

	var sample models.SampleRecord
	err := conn.QueryRow(`
		SELECT id, year, month, day, hour, minute, second, tick, duration, timestamp
		FROM data ORDER BY id DESC LIMIT 1
	`).Scan(&sample.ID, &sample.Year, &sample.Month, &sample.Day, &sample.Hour, &sample.Minute,
		&sample.Second, &sample.Tick, &sample.Duration, &sample.Timestamp)
	if err == sql.ErrNoRows {
		return "", ErrNoData
	}
	if err != nil {
		return "", fmt.Errorf("failed to query latest sample: %w", err)
	}

	var status models.StatusRecord
	err = conn.QueryRow(`
		SELECT id, year, month, day, hour, minute, second, solar_panel_voltage, solar_panel_boosted_voltage, battery_voltage, timestamp
		FROM status ORDER BY id DESC LIMIT 1
	`).Scan(&status.ID, &status.Year, &status.Month, &status.Day, &status.Hour, &status.Minute,
		&status.Second, &status.SolarPanelVoltage, &status.SolarPanelBoostedVoltage,
		&status.BatteryVoltage, &status.Timestamp)
	if err == sql.ErrNoRows {
		return "", ErrNoData
	}
	if err != nil {
		return "", fmt.Errorf("failed to query latest status: %w", err)
	}

	var b strings.Builder
	writeGauge(&b, "Year", strconv.Itoa(sample.Year))
	writeGauge(&b, "Month", strconv.Itoa(sample.Month))
	writeGauge(&b, "Day", strconv.Itoa(sample.Day))
	writeGauge(&b, "Hour", strconv.Itoa(sample.Hour))
	writeGauge(&b, "Minute", strconv.Itoa(sample.Minute))
	writeGauge(&b, "Second", strconv.Itoa(sample.Second))
	writeGauge(&b, "Duration", strconv.Itoa(sample.Duration))
	writeGauge(&b, "Tick", strconv.Itoa(sample.Tick))
	writeGauge(&b, "Solar_Panel_Voltage", formatVoltage(status.SolarPanelVoltage))
	writeGauge(&b, "Solar_Panel_Boosted_Voltage", formatVoltage(status.SolarPanelBoostedVoltage))
	writeGauge(&b, "Battery_Voltage", formatVoltage(status.BatteryVoltage))

	return b.String(), nil
}

func writeGauge(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "%s{id=%q} %s\n", name, SensorID, value)
}

// formatVoltage renders a voltage with minimal digits but keeps a
// trailing .0 on integral values (4 -> "4.0"), matching what the
// scraper saw from the reference deployment.
func formatVoltage(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
