package logpie

import (
	"strings"
	"time"
)

// UTC returns the current instant in UTC.
func UTC() time.Time {
	return time.Now().UTC()
}

// Local returns the current instant in the process's local zone.
// It is derived from UTC so the result always carries explicit zone data.
func Local() time.Time {
	return UTC().Local()
}

// Clock provides the current time to loggers. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

// UTCClock implements Clock using UTC.
type UTCClock struct{}

// Now returns UTC().
func (UTCClock) Now() time.Time { return UTC() }

// LocalClock implements Clock using Local.
type LocalClock struct{}

// Now returns Local().
func (LocalClock) Now() time.Time { return Local() }

// ClockFor maps a zone name ("utc" or "local") to a Clock.
// Unknown names select UTCClock.
func ClockFor(zone string) Clock {
	if strings.EqualFold(zone, "local") {
		return LocalClock{}
	}
	return UTCClock{}
}
