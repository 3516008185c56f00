package domain

import "time"

// TimeWindow half-open interval [Start, End)
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Duration returns the window length
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// IsOrdered returns true if Start < End
func (w TimeWindow) IsOrdered() bool {
	return w.Start.Before(w.End)
}

// Overlaps standard half-open interval test, touching endpoints do not overlap
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && w.End.After(other.Start)
}

// String formats the window as "HH:MM-HH:MM"
func (w TimeWindow) String() string {
	return w.Start.Format(TimeFormat) + "-" + w.End.Format(TimeFormat)
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay returns true if both times fall on the same calendar day
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
