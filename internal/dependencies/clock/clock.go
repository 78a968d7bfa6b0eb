package clock

import "time"

// Clock provides the current time; matches use it to stamp their records
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// New creates a SystemClock
func New() SystemClock {
	return SystemClock{}
}

// Now returns the current time in UTC
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
