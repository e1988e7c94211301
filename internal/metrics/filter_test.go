package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/braintap/kpi-engine/internal/types"
)

type stamped struct {
	ID string
	At types.CSVTime
}

func ts(s string) types.CSVTime {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return types.NewCSVTime(t)
}

func tp(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func stampedAt(r stamped) types.CSVTime { return r.At }

func ids(records []stamped) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilterByRange(t *testing.T) {
	records := []stamped{
		{ID: "a", At: ts("2025-01-01")},
		{ID: "b", At: ts("2025-01-15")},
		{ID: "c", At: ts("2025-02-01")},
		{ID: "bad"},
		{ID: "d", At: ts("2025-03-01")},
	}

	tests := []struct {
		name     string
		rng      types.DateRange
		expected []string
	}{
		{
			name:     "BothBoundsInclusive",
			rng:      types.DateRange{Start: tp("2025-01-15"), End: tp("2025-02-01")},
			expected: []string{"b", "c"},
		},
		{
			name:     "OpenRange_KeepsAllParseable",
			rng:      types.DateRange{},
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "OpenStart_ResolvesToMin",
			rng:      types.DateRange{End: tp("2025-01-15")},
			expected: []string{"a", "b"},
		},
		{
			name:     "OpenEnd_ResolvesToMax",
			rng:      types.DateRange{Start: tp("2025-02-01")},
			expected: []string{"c", "d"},
		},
		{
			name:     "StartAfterEnd_MatchesNothing",
			rng:      types.DateRange{Start: tp("2025-03-01"), End: tp("2025-01-01")},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByRange(records, stampedAt, tt.rng)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestFilterByRange_PreservesOrderAndInput(t *testing.T) {
	records := []stamped{
		{ID: "later", At: ts("2025-02-01")},
		{ID: "earlier", At: ts("2025-01-01")},
	}

	got := FilterByRange(records, stampedAt, types.DateRange{})

	assert.Equal(t, []string{"later", "earlier"}, ids(got))
	assert.Equal(t, "later", records[0].ID)
}

func TestFilterByRange_Idempotent(t *testing.T) {
	records := []stamped{
		{ID: "a", At: ts("2025-01-01")},
		{ID: "b", At: ts("2025-01-20")},
		{ID: "c", At: ts("2025-02-05")},
	}
	rng := types.DateRange{Start: tp("2025-01-01"), End: tp("2025-01-31")}

	once := FilterByRange(records, stampedAt, rng)
	twice := FilterByRange(once, stampedAt, rng)

	assert.Equal(t, once, twice)
}

func TestFilterByRange_NoParseableTimestamps(t *testing.T) {
	records := []stamped{{ID: "bad"}, {ID: "worse"}}

	got := FilterByRange(records, stampedAt, types.DateRange{})

	assert.Empty(t, got)
}

func TestLatestTimestamp(t *testing.T) {
	records := []stamped{
		{ID: "a", At: ts("2025-01-10")},
		{ID: "bad"},
		{ID: "b", At: ts("2025-03-02")},
		{ID: "c", At: ts("2025-02-01")},
	}

	latest, ok := LatestTimestamp(records, stampedAt)

	assert.True(t, ok)
	assert.Equal(t, ts("2025-03-02").Time, latest)

	_, ok = LatestTimestamp([]stamped{{ID: "bad"}}, stampedAt)
	assert.False(t, ok)
}
