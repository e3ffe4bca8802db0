package app

import (
	"time"

	"github.com/example/leadfunnel/internal/core/lead"
)

// Clock returns the current instant. Services read it once per call.
type Clock func() time.Time

// Settings carries the runtime values shared by the lead and report services.
type Settings struct {
	AppID       string
	PhoneRegion string
	Location    *time.Location
	Clock       Clock
	NewID       lead.IDGenerator
}

// withDefaults fills unset fields so tests can pass a partial Settings.
func (s Settings) withDefaults() Settings {
	if s.Location == nil {
		s.Location = time.Local
	}
	if s.Clock == nil {
		s.Clock = time.Now
	}
	if s.NewID == nil {
		s.NewID = lead.NewUUID
	}
	if s.PhoneRegion == "" {
		s.PhoneRegion = "US"
	}
	return s
}

// now returns the clock reading in the reporting location.
func (s Settings) now() time.Time {
	return s.Clock().In(s.Location)
}
