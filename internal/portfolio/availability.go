package portfolio

import (
	"strings"
	"time"
)

const (
	businessStart = 9
	businessEnd   = 17
)

// Availability is the contact section's status line.
type Availability struct {
	Available bool
	Label     string
	LocalTime string
}

// AvailabilityAt reports whether now falls within business hours
// (09:00 through 17:59) in loc.
func AvailabilityAt(now time.Time, loc *time.Location) Availability {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	hour := local.Hour()
	a := Availability{
		Available: hour >= businessStart && hour <= businessEnd,
		LocalTime: local.Format("15:04"),
	}
	if a.Available {
		a.Label = "Available now (business hours in " + cityOf(loc) + ")"
	} else {
		a.Label = "Outside business hours, but still responsive!"
	}
	return a
}

// cityOf turns "Europe/Prague" into "Prague".
func cityOf(loc *time.Location) string {
	name := loc.String()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, "_", " ")
}
