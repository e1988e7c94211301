package types

import (
	"time"

	ierr "github.com/braintap/kpi-engine/internal/errors"
)

// WindowSize is the granularity a timestamp is truncated to for bucketing.
type WindowSize string

const (
	WindowSizeDay   WindowSize = "DAY"
	WindowSizeMonth WindowSize = "MONTH"
	WindowSizeYear  WindowSize = "YEAR"
)

// Validate checks the window size is one of the supported granularities.
func (w WindowSize) Validate() error {
	switch w {
	case WindowSizeDay, WindowSizeMonth, WindowSizeYear:
		return nil
	default:
		return ierr.NewErrorf("invalid window size: %s", w).
			WithHint("Window size must be one of DAY, MONTH, YEAR").
			Mark(ierr.ErrValidation)
	}
}

// BucketKey truncates t to the window granularity and renders the canonical
// bucket label: 2006-01-02 for DAY, 2006-01 for MONTH, 2006 for YEAR.
func (w WindowSize) BucketKey(t time.Time) string {
	switch w {
	case WindowSizeDay:
		return t.Format("2006-01-02")
	case WindowSizeYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01")
	}
}

// MonthYearKey groups a timestamp by calendar year and month name. Series
// built on this key order by year first, then month name lexicographically,
// which reproduces the upstream dashboard's groupby ordering.
type MonthYearKey struct {
	Year      int
	MonthName string
}

// NewMonthYearKey derives the (year, month name) key for t.
func NewMonthYearKey(t time.Time) MonthYearKey {
	return MonthYearKey{
		Year:      t.Year(),
		MonthName: t.Month().String(),
	}
}

// Less orders keys by year ascending, then month name ascending.
func (k MonthYearKey) Less(other MonthYearKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.MonthName < other.MonthName
}
