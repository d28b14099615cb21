package calendar

import "time"

// Period is a closed date interval [Start, End]. A zero time means the bound
// is unset; a Period with both bounds zero is the "empty" sentinel returned by
// Intersection when the inputs do not overlap. Degenerate periods (End before
// Start) flow through the comparison methods and are never Inside anything —
// callers must not treat them as valid zero-length intervals.
type Period struct {
	Start time.Time
	End   time.Time
}

// FromWeeks builds a Period spanning the given number of weeks from start.
func FromWeeks(start time.Time, weeks int) Period {
	return Period{Start: start, End: AddWeeks(start, weeks)}
}

// Inside reports whether d falls within the period, inclusive on both ends.
// Both bounds must be set.
func (p Period) Inside(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Overlaps reports whether the two periods share at least one day.
func (p Period) Overlaps(other Period) bool {
	return !other.End.Before(p.Start) && !other.Start.After(p.End)
}

// Intersection returns the overlapping part of the two periods, or a zero
// Period when they do not overlap. Callers should check Overlaps first or
// test IsZero on the result.
func (p Period) Intersection(other Period) Period {
	if !p.Overlaps(other) {
		return Period{}
	}
	out := p
	if other.Start.After(p.Start) {
		out.Start = other.Start
	}
	if other.End.Before(p.End) {
		out.End = other.End
	}
	return out
}

// DurationDays returns the number of days from Start to End. Both bounds must
// be set.
func (p Period) DurationDays() int {
	return int(p.End.Sub(p.Start).Hours() / 24)
}

// IsZero reports whether neither bound is set.
func (p Period) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}

func (p Period) String() string {
	return "[" + p.Start.Format("2006-01-02") + " - " + p.End.Format("2006-01-02") + "]"
}
