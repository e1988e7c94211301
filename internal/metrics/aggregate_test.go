package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/braintap/kpi-engine/internal/types"
)

type line struct {
	Month  string
	Owner  string
	At     types.CSVTime
	Amount decimal.Decimal
}

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func monthOf(l line) (string, bool) { return l.Month, l.Month != "" }

func amountOf(l line) decimal.Decimal { return l.Amount }

func TestGroupSum(t *testing.T) {
	lines := []line{
		{Month: "2025-02", Amount: amt("10")},
		{Month: "2025-01", Amount: amt("5")},
		{Month: "2025-02", Amount: amt("2.5")},
		{Month: "", Amount: amt("999")},
	}

	got := GroupSum(lines, monthOf, amountOf)

	assert.Equal(t, []GroupValue{
		{Key: "2025-01", Value: amt("5")},
		{Key: "2025-02", Value: amt("12.5")},
	}, got)
}

func TestGroupSum_EmptyGroupsAbsent(t *testing.T) {
	got := GroupSum([]line{{Month: "2025-03", Amount: amt("1")}}, monthOf, amountOf)

	assert.Len(t, got, 1)
	assert.Equal(t, "2025-03", got[0].Key)
}

func TestGroupCountBy(t *testing.T) {
	lines := []line{
		{Owner: "b"}, {Owner: "a"}, {Owner: "b"}, {Owner: ""},
	}

	got := GroupCountBy(lines, func(l line) (string, bool) { return l.Owner, l.Owner != "" })

	assert.Equal(t, []GroupCount{
		{Key: "a", Count: 1},
		{Key: "b", Count: 2},
	}, got)
}

func TestGroupDistinctCount(t *testing.T) {
	lines := []line{
		{Month: "2025-01", Owner: "a"},
		{Month: "2025-01", Owner: "a"},
		{Month: "2025-01", Owner: "b"},
		{Month: "2025-02", Owner: "a"},
		{Month: "2025-02", Owner: ""},
	}

	got := GroupDistinctCount(lines, monthOf, func(l line) string { return l.Owner })

	assert.Equal(t, []GroupCount{
		{Key: "2025-01", Count: 2},
		{Key: "2025-02", Count: 1},
	}, got)
}

func TestGroupSumByMonthYear_Ordering(t *testing.T) {
	lines := []line{
		{At: ts("2025-04-10"), Amount: amt("3")},
		{At: ts("2024-12-01"), Amount: amt("1")},
		{At: ts("2025-02-15"), Amount: amt("2")},
		{At: ts("2025-08-01"), Amount: amt("4")},
		{At: types.CSVTime{}, Amount: amt("100")},
	}

	got := GroupSumByMonthYear(lines, func(l line) types.CSVTime { return l.At }, amountOf)

	// Year ascending, then month name ascending: within 2025 the names sort
	// April < August < February.
	keys := make([]types.MonthYearKey, len(got))
	for i, g := range got {
		keys[i] = g.Key
	}
	assert.Equal(t, []types.MonthYearKey{
		{Year: 2024, MonthName: "December"},
		{Year: 2025, MonthName: "April"},
		{Year: 2025, MonthName: "August"},
		{Year: 2025, MonthName: "February"},
	}, keys)
}

func TestDistinctCount(t *testing.T) {
	lines := []line{{Owner: "a"}, {Owner: "b"}, {Owner: "a"}, {Owner: ""}}

	assert.Equal(t, 2, DistinctCount(lines, func(l line) string { return l.Owner }))
}

func TestSumAmount(t *testing.T) {
	lines := []line{{Amount: amt("1.5")}, {Amount: amt("2.5")}}

	assert.True(t, amt("4").Equal(SumAmount(lines, amountOf)))
}

func TestReverseCounts(t *testing.T) {
	groups := []GroupCount{{Key: "2025-01", Count: 1}, {Key: "2025-02", Count: 2}}

	got := ReverseCounts(groups)

	assert.Equal(t, []GroupCount{{Key: "2025-02", Count: 2}, {Key: "2025-01", Count: 1}}, got)
	assert.Equal(t, "2025-01", groups[0].Key)
}
