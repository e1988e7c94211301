package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/braintap/kpi-engine/internal/api/dto"
	"github.com/braintap/kpi-engine/internal/domain/dataset"
	"github.com/braintap/kpi-engine/internal/metrics"
	"github.com/braintap/kpi-engine/internal/types"
)

// getFinancial computes the financial view from the pre-aggregated monthly
// summary rows whose reporting month falls in the window.
func (s *metricsService) getFinancial(_ context.Context, rng types.DateRange) *dto.FinancialMetrics {
	rows := metrics.FilterByRange(s.Store.FinancialSummary(),
		func(r dataset.FinancialSummaryRecord) types.CSVTime { return r.Month }, rng)

	monthKey := func(r dataset.FinancialSummaryRecord) (string, bool) {
		if !r.Month.Valid {
			return "", false
		}
		return types.WindowSizeMonth.BucketKey(r.Month.Time), true
	}

	return &dto.FinancialMetrics{
		TotalSales: metrics.SumAmount(rows, func(r dataset.FinancialSummaryRecord) decimal.Decimal {
			return r.TotalSales.Decimal
		}),
		TotalRefunds: metrics.SumAmount(rows, func(r dataset.FinancialSummaryRecord) decimal.Decimal {
			return r.TotalRefunds.Decimal
		}),
		TotalPayouts: metrics.SumAmount(rows, func(r dataset.FinancialSummaryRecord) decimal.Decimal {
			return r.TotalPayouts.Decimal
		}),
		NetProfitLoss: metrics.SumAmount(rows, func(r dataset.FinancialSummaryRecord) decimal.Decimal {
			return r.NetProfitLoss.Decimal
		}),
		SalesSeries: metrics.GroupSum(rows, monthKey, func(r dataset.FinancialSummaryRecord) decimal.Decimal {
			return r.TotalSales.Decimal
		}),
		RefundsSeries: metrics.GroupSum(rows, monthKey, func(r dataset.FinancialSummaryRecord) decimal.Decimal {
			return r.TotalRefunds.Decimal
		}),
		PayoutsSeries: metrics.GroupSum(rows, monthKey, func(r dataset.FinancialSummaryRecord) decimal.Decimal {
			return r.TotalPayouts.Decimal
		}),
		NetProfitLossSeries: metrics.GroupSum(rows, monthKey, func(r dataset.FinancialSummaryRecord) decimal.Decimal {
			return r.NetProfitLoss.Decimal
		}),
	}
}
