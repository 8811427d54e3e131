package models

import "fmt"

// SampleRecord represents one stored tick/duration measurement event.
// The six time components are sensor-reported wall-clock values stored
// verbatim; Timestamp is assigned by the server at write time and, with
// ID, is the authoritative ordering signal.
type SampleRecord struct {
	ID        int64  `json:"id"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	Second    int    `json:"second"`
	Tick      int    `json:"tick"`
	Duration  int    `json:"duration"`
	Timestamp string `json:"timestamp"`
}

// StatusRecord represents one stored power-supply voltage snapshot.
type StatusRecord struct {
	ID                       int64   `json:"id"`
	Year                     int     `json:"year"`
	Month                    int     `json:"month"`
	Day                      int     `json:"day"`
	Hour                     int     `json:"hour"`
	Minute                   int     `json:"minute"`
	Second                   int     `json:"second"`
	SolarPanelVoltage        float64 `json:"solar_panel_voltage"`
	SolarPanelBoostedVoltage float64 `json:"solar_panel_boosted_voltage"`
	BatteryVoltage           float64 `json:"battery_voltage"`
	Timestamp                string  `json:"timestamp"`
}

// StatusPayload is the "status" sub-object of an ingestion request.
// Fields are pointers so a missing key can be told apart from zero.
type StatusPayload struct {
	SolarPanelVoltage        *float64 `json:"solar_panel_voltage"`
	SolarPanelBoostedVoltage *float64 `json:"solar_panel_boosted_voltage"`
	BatteryVoltage           *float64 `json:"battery_voltage"`
}

// DataPayload is the "data" sub-object of an ingestion request.
type DataPayload struct {
	Year     *int `json:"year"`
	Month    *int `json:"month"`
	Day      *int `json:"day"`
	Hour     *int `json:"hour"`
	Minute   *int `json:"minute"`
	Second   *int `json:"second"`
	Ticks    *int `json:"ticks"`
	Duration *int `json:"duration"`
}

// SaveDataRequest is the JSON body of POST /savedata.
type SaveDataRequest struct {
	Status *StatusPayload `json:"status"`
	Data   *DataPayload   `json:"data"`
}

// Validate reports the first missing required field, if any. No partial
// write ever happens for an invalid request.
func (r *SaveDataRequest) Validate() error {
	if r.Status == nil {
		return fmt.Errorf("missing required field: status")
	}
	if r.Data == nil {
		return fmt.Errorf("missing required field: data")
	}

	statusFields := []struct {
		name  string
		value *float64
	}{
		{"status.solar_panel_voltage", r.Status.SolarPanelVoltage},
		{"status.solar_panel_boosted_voltage", r.Status.SolarPanelBoostedVoltage},
		{"status.battery_voltage", r.Status.BatteryVoltage},
	}
	for _, f := range statusFields {
		if f.value == nil {
			return fmt.Errorf("missing required field: %s", f.name)
		}
	}

	dataFields := []struct {
		name  string
		value *int
	}{
		{"data.year", r.Data.Year},
		{"data.month", r.Data.Month},
		{"data.day", r.Data.Day},
		{"data.hour", r.Data.Hour},
		{"data.minute", r.Data.Minute},
		{"data.second", r.Data.Second},
		{"data.ticks", r.Data.Ticks},
		{"data.duration", r.Data.Duration},
	}
	for _, f := range dataFields {
		if f.value == nil {
			return fmt.Errorf("missing required field: %s", f.name)
		}
	}

	return nil
}
