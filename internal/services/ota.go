package services

import (
	"sync"
	"time"
)

// OTASwitch is the remote go/no-go flag the sensor polls before
// accepting a firmware update. It is owned by main and passed to the
// handlers that need it; state is in-memory only and lost on restart.
type OTASwitch struct {
	mu         sync.Mutex
	enabled    bool
	lastToggle time.Time
}

// NewOTASwitch creates a switch in the off state.
func NewOTASwitch() *OTASwitch {
	return &OTASwitch{}
}

// Enabled reports the current state.
func (s *OTASwitch) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Set forces the switch to the given state and records the change time.
func (s *OTASwitch) Set(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = on
	s.lastToggle = time.Now()
}

// Toggle flips the switch and returns the new state.
func (s *OTASwitch) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = !s.enabled
	s.lastToggle = time.Now()
	return s.enabled
}

// LastToggle returns when the switch last changed, and false if it
// never has.
func (s *OTASwitch) LastToggle() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastToggle, !s.lastToggle.IsZero()
}
