package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/braintap/kpi-engine/internal/types"
)

// GroupValue is one group of a sum aggregation.
type GroupValue struct {
	Key   string          `json:"key"`
	Value decimal.Decimal `json:"value"`
}

// GroupCount is one group of a count aggregation.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// MonthYearValue is one group of a sum aggregation keyed by calendar year
// and month name.
type MonthYearValue struct {
	Key   types.MonthYearKey `json:"key"`
	Value decimal.Decimal    `json:"value"`
}

// GroupSum groups records by keyFn and sums valFn per group, ordered
// ascending by group key. keyFn returning ok=false drops the record.
// Groups with no records are simply absent; callers needing a complete
// calendar axis fill gaps themselves.
func GroupSum[T any](records []T, keyFn func(T) (string, bool), valFn func(T) decimal.Decimal) []GroupValue {
	sums := make(map[string]decimal.Decimal)
	for _, r := range records {
		key, ok := keyFn(r)
		if !ok {
			continue
		}
		sums[key] = sums[key].Add(valFn(r))
	}

	out := make([]GroupValue, 0, len(sums))
	for key, sum := range sums {
		out = append(out, GroupValue{Key: key, Value: sum})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// GroupCountBy groups records by keyFn and counts per group, ordered
// ascending by group key.
func GroupCountBy[T any](records []T, keyFn func(T) (string, bool)) []GroupCount {
	counts := make(map[string]int)
	for _, r := range records {
		key, ok := keyFn(r)
		if !ok {
			continue
		}
		counts[key]++
	}

	out := make([]GroupCount, 0, len(counts))
	for key, count := range counts {
		out = append(out, GroupCount{Key: key, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// GroupDistinctCount groups records by keyFn and counts distinct non-empty
// distinctFn values per group, ordered ascending by group key.
func GroupDistinctCount[T any](records []T, keyFn func(T) (string, bool), distinctFn func(T) string) []GroupCount {
	seen := make(map[string]map[string]struct{})
	for _, r := range records {
		key, ok := keyFn(r)
		if !ok {
			continue
		}
		v := distinctFn(r)
		if v == "" {
			continue
		}
		if seen[key] == nil {
			seen[key] = make(map[string]struct{})
		}
		seen[key][v] = struct{}{}
	}

	out := make([]GroupCount, 0, len(seen))
	for key, values := range seen {
		out = append(out, GroupCount{Key: key, Count: len(values)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// GroupSumByMonthYear groups records by (year, month name) of their
// timestamp and sums valFn per group, ordered year ascending then month
// name ascending. Records with invalid timestamps are dropped.
func GroupSumByMonthYear[T any](records []T, timeFn func(T) types.CSVTime, valFn func(T) decimal.Decimal) []MonthYearValue {
	sums := make(map[types.MonthYearKey]decimal.Decimal)
	for _, r := range records {
		ts := timeFn(r)
		if !ts.Valid {
			continue
		}
		key := types.NewMonthYearKey(ts.Time)
		sums[key] = sums[key].Add(valFn(r))
	}

	out := make([]MonthYearValue, 0, len(sums))
	for key, sum := range sums {
		out = append(out, MonthYearValue{Key: key, Value: sum})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out
}

// DistinctCount counts distinct non-empty values of fn over records.
func DistinctCount[T any](records []T, fn func(T) string) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if v := fn(r); v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// CountWhere counts records matching pred.
func CountWhere[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// SumAmount sums valFn over all records.
func SumAmount[T any](records []T, valFn func(T) decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(valFn(r))
	}
	return sum
}

// ReverseCounts returns a copy of groups in reverse order, for consumers
// that want descending keys.
func ReverseCounts(groups []GroupCount) []GroupCount {
	out := make([]GroupCount, len(groups))
	for i, g := range groups {
		out[len(groups)-1-i] = g
	}
	return out
}
