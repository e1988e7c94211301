package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/braintap/kpi-engine/internal/api/dto"
	"github.com/braintap/kpi-engine/internal/domain/dataset"
	"github.com/braintap/kpi-engine/internal/metrics"
	"github.com/braintap/kpi-engine/internal/types"
)

const (
	topCustomersLimit = 5
	topProductsLimit  = 5
)

// getRevenue computes the revenue view. The totals, monthly series and
// rankings are scoped to the requested window; the month-name trend charts
// deliberately span the whole dataset, as the upstream dashboard's did.
func (s *metricsService) getRevenue(_ context.Context, rng types.DateRange) *dto.RevenueMetrics {
	all := s.Store.Revenue()
	createdOf := func(r dataset.RevenueRecord) types.CSVTime { return r.Created }

	filtered := metrics.FilterByRange(all, createdOf, rng)
	subscriptionLines, productLines := metrics.SplitSubscriptionProduct(filtered)

	invoiceAmount := func(r dataset.RevenueRecord) decimal.Decimal { return r.TotalInvoiceAmount.Decimal }
	taxAmount := func(r dataset.RevenueRecord) decimal.Decimal { return r.Tax.Decimal }
	monthKey := func(r dataset.RevenueRecord) (string, bool) {
		if !r.Created.Valid {
			return "", false
		}
		return types.WindowSizeMonth.BucketKey(r.Created.Time), true
	}

	out := &dto.RevenueMetrics{
		TotalTransactionAmount:  metrics.SumAmount(filtered, invoiceAmount),
		TotalSubscriptionAmount: metrics.SumAmount(subscriptionLines, invoiceAmount),
		TotalProductAmount:      metrics.SumAmount(productLines, invoiceAmount),
		TotalTaxAmount:          metrics.SumAmount(filtered, taxAmount),

		MonthlyNetAmount: metrics.GroupSum(filtered, monthKey, func(r dataset.RevenueRecord) decimal.Decimal {
			return r.NetAmount.Decimal
		}),
		MonthlyTax: metrics.GroupSum(filtered, monthKey, taxAmount),
	}

	out.MonthlyTaxAndFee = monthlyTaxAndFee(filtered, monthKey)

	// The upstream dashboard truncates invoice amounts to whole units before
	// ranking customers; preserved for parity.
	wholeInvoiceAmount := func(r dataset.RevenueRecord) decimal.Decimal {
		return decimal.NewFromInt(r.TotalInvoiceAmount.IntPart())
	}
	byEmail := metrics.GroupSum(filtered, func(r dataset.RevenueRecord) (string, bool) {
		return r.Email, r.Email != ""
	}, wholeInvoiceAmount)
	out.TopCustomers = metrics.TopN(metrics.RankValues(byEmail), topCustomersLimit)

	byProduct := metrics.GroupSum(productLines, func(r dataset.RevenueRecord) (string, bool) {
		return r.Description, r.Description != ""
	}, invoiceAmount)
	out.TopProducts = metrics.TopN(metrics.RankValues(byProduct), topProductsLimit)

	out.SubscriptionCounts = subscriptionCounts(filtered)

	// Trend charts: whole dataset, unparseable timestamps dropped, keyed by
	// (year, month name) and labeled with the month name.
	out.TransactionTrend = monthNameTrend(all, invoiceAmount)
	allSubscription, allProduct := metrics.SplitSubscriptionProduct(all)
	out.SubscriptionTrend = monthNameTrend(allSubscription, invoiceAmount)
	out.ProductTrend = monthNameTrend(allProduct, invoiceAmount)
	out.TaxTrend = monthNameTrend(all, taxAmount)

	return out
}

func monthlyTaxAndFee(records []dataset.RevenueRecord, monthKey func(dataset.RevenueRecord) (string, bool)) []dto.TaxFeePoint {
	tax := metrics.GroupSum(records, monthKey, func(r dataset.RevenueRecord) decimal.Decimal {
		return r.Tax.Decimal
	})
	fee := metrics.GroupSum(records, monthKey, func(r dataset.RevenueRecord) decimal.Decimal {
		return r.Fee.Decimal
	})

	feeByMonth := make(map[string]decimal.Decimal, len(fee))
	for _, g := range fee {
		feeByMonth[g.Key] = g.Value
	}

	out := make([]dto.TaxFeePoint, len(tax))
	for i, g := range tax {
		out[i] = dto.TaxFeePoint{Month: g.Key, Tax: g.Value, Fee: feeByMonth[g.Key]}
	}
	return out
}

// subscriptionCounts counts revenue line items per subscription id, most
// frequent first.
func subscriptionCounts(records []dataset.RevenueRecord) []metrics.GroupCount {
	counts := metrics.GroupCountBy(records, func(r dataset.RevenueRecord) (string, bool) {
		return r.SubscriptionID, r.SubscriptionID != ""
	})
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

// monthNameTrend sums valFn per (year, month name) bucket and derives the
// percent-change series. Bucket labels carry only the month name; ordering
// is year ascending, then month name ascending.
func monthNameTrend(records []dataset.RevenueRecord, valFn func(dataset.RevenueRecord) decimal.Decimal) []metrics.TrendPoint {
	grouped := metrics.GroupSumByMonthYear(records, func(r dataset.RevenueRecord) types.CSVTime {
		return r.Created
	}, valFn)

	series := make([]metrics.GroupValue, len(grouped))
	for i, g := range grouped {
		series[i] = metrics.GroupValue{Key: g.Key.MonthName, Value: g.Value}
	}
	return metrics.PercentChange(series)
}
