package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entries(pairs ...interface{}) []RankedEntry {
	out := make([]RankedEntry, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, RankedEntry{Key: pairs[i].(string), Value: amt(pairs[i+1].(string))})
	}
	return out
}

func TestTopNWithOther(t *testing.T) {
	got := TopNWithOther(entries("A", "50", "B", "30", "C", "10", "D", "5"), 2)

	assert.Equal(t, entries("A", "50", "B", "30", "Other", "15"), got)
}

func TestTopNWithOther_NoRemainder(t *testing.T) {
	got := TopNWithOther(entries("A", "50", "B", "30"), 2)

	assert.Equal(t, entries("A", "50", "B", "30"), got)
}

func TestTopNWithOther_ZeroRemainderOmitted(t *testing.T) {
	got := TopNWithOther(entries("A", "50", "B", "30", "C", "0"), 2)

	assert.Equal(t, entries("A", "50", "B", "30"), got)
}

func TestTopNWithOther_TieBreaksAscendingByKey(t *testing.T) {
	got := TopNWithOther(entries("Z", "10", "A", "10", "M", "10"), 2)

	assert.Equal(t, entries("A", "10", "M", "10", "Other", "10"), got)
}

func TestTopN(t *testing.T) {
	got := TopN(entries("C", "10", "A", "50", "B", "30"), 2)

	assert.Equal(t, entries("A", "50", "B", "30"), got)
}

func TestTopN_FewerThanN(t *testing.T) {
	got := TopN(entries("A", "1"), 5)

	assert.Equal(t, entries("A", "1"), got)
}

func TestRankCounts(t *testing.T) {
	got := RankCounts([]GroupCount{{Key: "a", Count: 3}})

	assert.Equal(t, entries("a", "3"), got)
}

func TestRankValues(t *testing.T) {
	got := RankValues([]GroupValue{{Key: "a", Value: amt("1.5")}})

	assert.Equal(t, entries("a", "1.5"), got)
}
