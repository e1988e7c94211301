package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateRange_Contains(t *testing.T) {
	start, end := day("2025-01-10"), day("2025-01-20")
	rng := DateRange{Start: &start, End: &end}

	assert.True(t, rng.Contains(day("2025-01-10")), "start bound is inclusive")
	assert.True(t, rng.Contains(day("2025-01-20")), "end bound is inclusive")
	assert.True(t, rng.Contains(day("2025-01-15")))
	assert.False(t, rng.Contains(day("2025-01-09")))
	assert.False(t, rng.Contains(day("2025-01-21")))
}

func TestDateRange_OpenBounds(t *testing.T) {
	assert.True(t, DateRange{}.IsOpen())
	assert.True(t, DateRange{}.Contains(day("1970-01-01")))

	start := day("2025-01-10")
	half := DateRange{Start: &start}
	assert.False(t, half.IsOpen())
	assert.True(t, half.Contains(day("2099-01-01")))
	assert.False(t, half.Contains(day("2025-01-09")))
}

func TestDateRange_StartAfterEnd(t *testing.T) {
	start, end := day("2025-02-01"), day("2025-01-01")
	rng := DateRange{Start: &start, End: &end}

	assert.False(t, rng.Contains(day("2025-01-15")))
	assert.False(t, rng.Contains(day("2025-02-01")))
}

func TestTrailingDays(t *testing.T) {
	now := day("2025-06-30")
	rng := TrailingDays(now, 30)

	assert.Equal(t, day("2025-05-31"), *rng.Start)
	assert.Equal(t, now, *rng.End)
}

func TestViewKind_Validate(t *testing.T) {
	for _, v := range AllViewKinds() {
		assert.NoError(t, v.Validate())
	}

	err := ViewKind("dashboard").Validate()
	assert.Error(t, err)
}

func TestDatasetKind_Validate(t *testing.T) {
	for _, k := range AllDatasetKinds() {
		assert.NoError(t, k.Validate())
	}

	assert.Error(t, DatasetKind("orders").Validate())
}

func TestMonthYearKey_Less(t *testing.T) {
	assert.True(t, MonthYearKey{Year: 2024, MonthName: "December"}.Less(MonthYearKey{Year: 2025, MonthName: "April"}))
	assert.True(t, MonthYearKey{Year: 2025, MonthName: "April"}.Less(MonthYearKey{Year: 2025, MonthName: "February"}))
	assert.False(t, MonthYearKey{Year: 2025, MonthName: "March"}.Less(MonthYearKey{Year: 2025, MonthName: "March"}))
}

func TestWindowSize_BucketKey(t *testing.T) {
	at := time.Date(2025, 3, 2, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "2025-03-02", WindowSizeDay.BucketKey(at))
	assert.Equal(t, "2025-03", WindowSizeMonth.BucketKey(at))
	assert.Equal(t, "2025", WindowSizeYear.BucketKey(at))
}
