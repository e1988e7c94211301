package metrics

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TrendPoint is one bucket of an ordered series with its period-over-period
// percent change. PercentChange is nil for the first bucket and whenever
// the previous bucket's value is zero.
type TrendPoint struct {
	Key           string           `json:"key"`
	Value         decimal.Decimal  `json:"value"`
	PercentChange *decimal.Decimal `json:"percent_change,omitempty"`
}

// PercentChange derives the percent-change series of an ordered
// aggregation. The output has the same length and order as the input.
func PercentChange(series []GroupValue) []TrendPoint {
	out := make([]TrendPoint, len(series))
	for i, g := range series {
		point := TrendPoint{Key: g.Key, Value: g.Value}
		if i > 0 && !series[i-1].Value.IsZero() {
			pct := g.Value.Sub(series[i-1].Value).
				Div(series[i-1].Value).
				Mul(hundred)
			point.PercentChange = &pct
		}
		out[i] = point
	}
	return out
}
