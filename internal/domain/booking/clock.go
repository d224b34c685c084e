package booking

import (
	"fmt"
	"time"
)

// ClockSeconds parses a wall-clock time ("15:04" or "15:04:05") into
// seconds since midnight.
func ClockSeconds(s string) (int, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
		}
	}
	return 0, fmt.Errorf("invalid clock time %q", s)
}

// FormatClock renders seconds since midnight as "HH:MM:SS".
func FormatClock(sec int) string {
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec/60)%60, sec%60)
}

// Interval is a half-open [Start, End) span in seconds since midnight.
type Interval struct {
	Start int
	End   int
}

func NewInterval(startSec, durationMin int) Interval {
	return Interval{Start: startSec, End: startSec + durationMin*60}
}

func (iv Interval) Valid() bool {
	return iv.Start < iv.End
}

// Contains reports whether other lies fully inside iv.
func (iv Interval) Contains(other Interval) bool {
	return other.Start >= iv.Start && other.End <= iv.End
}

// Overlaps reports half-open intersection: touching endpoints do not
// count as overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}
