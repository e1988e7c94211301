package metrics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// OtherKey is the synthetic entry a ranking collapses its remainder into.
const OtherKey = "Other"

// RankedEntry is one entity of a ranking table.
type RankedEntry struct {
	Key   string          `json:"key"`
	Value decimal.Decimal `json:"value"`
}

// sortRanked orders entries descending by value, ties broken ascending by
// key for determinism.
func sortRanked(entries []RankedEntry) []RankedEntry {
	sorted := make([]RankedEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Value.Equal(sorted[j].Value) {
			return sorted[i].Value.GreaterThan(sorted[j].Value)
		}
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}

// TopNWithOther keeps the n largest entries and appends an "Other" entry
// holding the sum of the remainder. "Other" is omitted when no remainder
// entries exist or their sum is zero, so the result never exceeds n+1
// entries and the "Other" value is never negative.
func TopNWithOther(entries []RankedEntry, n int) []RankedEntry {
	if n < 0 {
		n = 0
	}

	sorted := sortRanked(entries)
	if len(sorted) <= n {
		return sorted
	}

	top := sorted[:n]
	other := decimal.Zero
	for _, e := range sorted[n:] {
		other = other.Add(e.Value)
	}
	if other.IsZero() {
		return top
	}
	return append(top, RankedEntry{Key: OtherKey, Value: other})
}

// TopN keeps the n largest entries and drops the remainder.
func TopN(entries []RankedEntry, n int) []RankedEntry {
	if n < 0 {
		n = 0
	}
	sorted := sortRanked(entries)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// RankCounts adapts a count aggregation to ranking entries.
func RankCounts(groups []GroupCount) []RankedEntry {
	out := make([]RankedEntry, len(groups))
	for i, g := range groups {
		out[i] = RankedEntry{Key: g.Key, Value: decimal.NewFromInt(int64(g.Count))}
	}
	return out
}

// RankValues adapts a sum aggregation to ranking entries.
func RankValues(groups []GroupValue) []RankedEntry {
	out := make([]RankedEntry, len(groups))
	for i, g := range groups {
		out[i] = RankedEntry{Key: g.Key, Value: g.Value}
	}
	return out
}
