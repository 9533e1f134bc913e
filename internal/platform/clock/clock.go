package clock

import "time"

// Clock abstracts time so day-rollover and streak logic stay
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports device-local time. Day keys are derived from the
// local calendar day, so the location must not be normalized away here.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
