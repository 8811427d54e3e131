package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"geigermon/internal/services"
)

// otaPage is the human-facing toggle page. The sensor never reads it;
// it polls /otaswitchstate instead.
const otaPage = `<!DOCTYPE html>
<html>
<head>
    <title>OTA Toggle</title>
</head>
<body>
    <h1>OTA Switch: {{if .Enabled}}ON{{else}}OFF{{end}}</h1>
    <p>Last OTA time: {{if .HasToggled}}{{.LastToggle}}{{else}}Never{{end}}</p>
    <form action="/toggleotaswitch" method="post">
        <button type="submit">Toggle OTA</button>
    </form>
</body>
</html>
`

// OTAHandler serves the OTA switch page and its state endpoints. The
// device string-matches "True" on /otaswitchstate, so the capitalized
// Python-style booleans are part of the contract.
type OTAHandler struct {
	otaSwitch *services.OTASwitch
	tmpl      *template.Template
}

// NewOTAHandler creates a new OTAHandler instance
func NewOTAHandler(otaSwitch *services.OTASwitch) *OTAHandler {
	return &OTAHandler{
		otaSwitch: otaSwitch,
		tmpl:      template.Must(template.New("otaswitch").Parse(otaPage)),
	}
}

// Page handles GET /otaswitch.
func (h *OTAHandler) Page(w http.ResponseWriter, r *http.Request) {
	lastToggle, hasToggled := h.otaSwitch.LastToggle()

	data := struct {
		Enabled    bool
		HasToggled bool
		LastToggle string
	}{
		Enabled:    h.otaSwitch.Enabled(),
		HasToggled: hasToggled,
		LastToggle: lastToggle.Format("2006-01-02 15:04:05"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		fmt.Printf("[API] GET /otaswitch - template failure: %v\n", err)
	}
}

// Toggle handles POST /toggleotaswitch and redirects back to the page.
func (h *OTAHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	state := h.otaSwitch.Toggle()
	fmt.Printf("[API] POST /toggleotaswitch - now %s\n", stateText(state))
	http.Redirect(w, r, "/otaswitch", http.StatusSeeOther)
}

// State handles GET /otaswitchstate, the endpoint the device polls.
func (h *OTAHandler) State(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, stateText(h.otaSwitch.Enabled()))
}

// Change handles GET /changeotaswitch?state=S. The device calls this
// with state=False after completing an update; "True", "true" and "1"
// switch on, anything else switches off.
func (h *OTAHandler) Change(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		http.Error(w, "Missing state parameter", http.StatusBadRequest)
		return
	}

	on := state == "True" || state == "true" || state == "1"
	h.otaSwitch.Set(on)
	fmt.Printf("[API] GET /changeotaswitch - now %s\n", stateText(on))
	fmt.Fprintf(w, "OTA State Changed to %s", stateText(on))
}

func stateText(on bool) string {
	if on {
		return "True"
	}
	return "False"
}
