package types

import (
	"time"
)

// DateRange is an inclusive [Start, End] time window. Nil bounds mean
// "resolve from the data" (min/max of the relevant timestamp field).
// Start after End is legal and simply matches nothing.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// IsOpen reports whether both bounds are unset.
func (r DateRange) IsOpen() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether t lies within the window, both ends inclusive.
// Unset bounds do not constrain.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// TrailingDays returns the range [now-days, now].
func TrailingDays(now time.Time, days int) DateRange {
	start := now.AddDate(0, 0, -days)
	return DateRange{Start: &start, End: &now}
}
