package booking

// Reason is a booking rejection outcome. Rejections are expected,
// frequent results that callers branch on by exact identity; they are
// never collapsed into a generic failure.
type Reason string

const (
	ReasonBusinessNotAvailable   Reason = "business_not_available"
	ReasonOutsideBusinessHours   Reason = "outside_business_hours"
	ReasonOverlappingAppointment Reason = "overlapping_appointment"

	// ReasonAccepted is the zero value: the candidate may be booked.
	ReasonAccepted Reason = ""
)

// Validate decides whether a candidate interval may be booked on a day
// whose availability windows and already-booked intervals are given.
//
// The candidate must lie fully inside a single window; spanning two
// adjacent windows does not count, and containment is existential, so
// overlapping windows are harmless. Booked intervals conflict on
// half-open intersection: an appointment ending at 10:00 does not block
// one starting at 10:00.
func Validate(candidate Interval, windows []Interval, booked []Interval) Reason {
	if len(windows) == 0 {
		return ReasonBusinessNotAvailable
	}

	contained := false
	for _, w := range windows {
		if w.Contains(candidate) {
			contained = true
			break
		}
	}
	if !contained {
		return ReasonOutsideBusinessHours
	}

	for _, b := range booked {
		if candidate.Overlaps(b) {
			return ReasonOverlappingAppointment
		}
	}

	return ReasonAccepted
}
