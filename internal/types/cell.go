package types

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// timeLayouts are the timestamp shapes seen across the raw exports. Cells
// matching none of them decode to an invalid CSVTime rather than failing
// the row.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// CSVTime is a timestamp cell that tolerates unparseable values. An invalid
// cell keeps its record in the collection but excludes it from every
// time-windowed computation.
type CSVTime struct {
	Time  time.Time
	Valid bool
}

// NewCSVTime wraps a known-good timestamp.
func NewCSVTime(t time.Time) CSVTime {
	return CSVTime{Time: t, Valid: true}
}

// ParseCSVTime attempts each known layout in order.
func ParseCSVTime(s string) CSVTime {
	s = strings.TrimSpace(s)
	if s == "" {
		return CSVTime{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return CSVTime{Time: t.UTC(), Valid: true}
		}
	}
	return CSVTime{}
}

// UnmarshalCSV implements gocsv field decoding.
func (t *CSVTime) UnmarshalCSV(s string) error {
	*t = ParseCSVTime(s)
	return nil
}

// MarshalCSV implements gocsv field encoding.
func (t CSVTime) MarshalCSV() (string, error) {
	if !t.Valid {
		return "", nil
	}
	return t.Time.Format(time.RFC3339), nil
}

// Date truncates the timestamp to midnight UTC.
func (t CSVTime) Date() time.Time {
	return time.Date(t.Time.Year(), t.Time.Month(), t.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// CSVAmount is a monetary cell. Blank or malformed values decode to zero so
// a corrupt cell contributes nothing to a sum instead of aborting the load.
type CSVAmount struct {
	decimal.Decimal
}

// NewCSVAmount wraps a decimal value.
func NewCSVAmount(d decimal.Decimal) CSVAmount {
	return CSVAmount{Decimal: d}
}

// AmountFromFloat wraps a float value, mainly for fixtures.
func AmountFromFloat(f float64) CSVAmount {
	return CSVAmount{Decimal: decimal.NewFromFloat(f)}
}

// UnmarshalCSV implements gocsv field decoding.
func (a *CSVAmount) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalCSV implements gocsv field encoding.
func (a CSVAmount) MarshalCSV() (string, error) {
	return a.Decimal.String(), nil
}

// CSVBool is a boolean cell tolerating the casings and blanks seen in the
// exports. Anything not recognized as true decodes to false.
type CSVBool struct {
	Value bool
}

// UnmarshalCSV implements gocsv field decoding.
func (b *CSVBool) UnmarshalCSV(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes":
		b.Value = true
	default:
		b.Value = false
	}
	return nil
}

// MarshalCSV implements gocsv field encoding.
func (b CSVBool) MarshalCSV() (string, error) {
	if b.Value {
		return "true", nil
	}
	return "false", nil
}

// CSVInt is an integer cell. Blank or malformed values decode to zero.
type CSVInt struct {
	Value int
}

// UnmarshalCSV implements gocsv field decoding.
func (i *CSVInt) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		i.Value = 0
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		i.Value = 0
		return nil
	}
	i.Value = int(d.IntPart())
	return nil
}

// MarshalCSV implements gocsv field encoding.
func (i CSVInt) MarshalCSV() (string, error) {
	return decimal.NewFromInt(int64(i.Value)).String(), nil
}
