package metrics

import (
	"time"

	"github.com/braintap/kpi-engine/internal/types"
)

// FilterByRange restricts records to those whose designated timestamp lies
// within rng, both ends inclusive. Records with an invalid timestamp are
// excluded before bound resolution and filtering. Unset bounds resolve to
// the min/max timestamp over the remaining records. Original order is
// preserved and the input is never mutated. Start after End matches nothing.
func FilterByRange[T any](records []T, timeFn func(T) types.CSVTime, rng types.DateRange) []T {
	parseable := make([]T, 0, len(records))
	for _, r := range records {
		if timeFn(r).Valid {
			parseable = append(parseable, r)
		}
	}
	if len(parseable) == 0 {
		return nil
	}

	resolved := resolveRange(parseable, timeFn, rng)

	out := make([]T, 0, len(parseable))
	for _, r := range parseable {
		if resolved.Contains(timeFn(r).Time) {
			out = append(out, r)
		}
	}
	return out
}

// resolveRange fills unset bounds from the min/max timestamp of records,
// which must all carry valid timestamps.
func resolveRange[T any](records []T, timeFn func(T) types.CSVTime, rng types.DateRange) types.DateRange {
	if rng.Start != nil && rng.End != nil {
		return rng
	}

	min, max := timeFn(records[0]).Time, timeFn(records[0]).Time
	for _, r := range records[1:] {
		t := timeFn(r).Time
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}

	resolved := rng
	if resolved.Start == nil {
		resolved.Start = &min
	}
	if resolved.End == nil {
		resolved.End = &max
	}
	return resolved
}

// LatestTimestamp returns the max valid timestamp over records, reporting
// false when no record carries one.
func LatestTimestamp[T any](records []T, timeFn func(T) types.CSVTime) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, r := range records {
		ts := timeFn(r)
		if !ts.Valid {
			continue
		}
		if !found || ts.Time.After(latest) {
			latest = ts.Time
			found = true
		}
	}
	return latest, found
}
