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
	topRefundedLimit    = 2
	topFailureCodeLimit = 5
	topRefundAmtsLimit  = 5
)

// getPayment computes the payment view over payments whose created date
// falls in the window.
func (s *metricsService) getPayment(_ context.Context, rng types.DateRange) *dto.PaymentMetrics {
	payments := metrics.FilterByRange(s.Store.Payments(),
		func(r dataset.PaymentRecord) types.CSVTime { return r.CreatedDate }, rng)

	succeeded := metrics.CountWhere(payments, func(r dataset.PaymentRecord) bool {
		return r.Status == types.PaymentStatusSucceeded
	})
	failed := metrics.CountWhere(payments, func(r dataset.PaymentRecord) bool {
		return r.Status == types.PaymentStatusFailed
	})

	out := &dto.PaymentMetrics{
		TotalTransactions:      len(payments),
		SuccessfulTransactions: succeeded,
		FailedTransactions:     failed,
	}

	refunded := filterRecords(payments, func(r dataset.PaymentRecord) bool {
		return r.Refunded.Value
	})
	refundedByDesc := metrics.GroupCountBy(refunded, func(r dataset.PaymentRecord) (string, bool) {
		if r.Description == "" {
			return "", false
		}
		return r.Description, true
	})
	out.TopRefundedDescriptions = metrics.TopNWithOther(metrics.RankCounts(refundedByDesc), topRefundedLimit)

	// The distribution is a two-slice pie; a single-status window renders
	// nothing rather than a trivial 100% slice.
	if succeeded > 0 && failed > 0 {
		out.StatusDistribution = []metrics.RankedEntry{
			{Key: "Succeeded", Value: decimal.NewFromInt(int64(succeeded))},
			{Key: "Failed", Value: decimal.NewFromInt(int64(failed))},
		}
	}

	out.TopFailureCodes = topFailureCodes(payments)

	withRefund := filterRecords(payments, func(r dataset.PaymentRecord) bool {
		return r.AmountRefunded.IsPositive()
	})
	amounts := metrics.GroupCountBy(withRefund, func(r dataset.PaymentRecord) (string, bool) {
		return r.AmountRefunded.String(), true
	})
	out.FrequentRefundAmounts = metrics.TopN(metrics.RankCounts(amounts), topRefundAmtsLimit)

	return out
}

// topFailureCodes ranks failure codes by their share of all coded failures,
// expressed as a percentage rounded to two places.
func topFailureCodes(payments []dataset.PaymentRecord) []dto.FailureCodeShare {
	coded := metrics.GroupCountBy(payments, func(r dataset.PaymentRecord) (string, bool) {
		if r.FailureCode == "" {
			return "", false
		}
		return r.FailureCode, true
	})

	total := 0
	for _, g := range coded {
		total += g.Count
	}
	if total == 0 {
		return nil
	}

	sort.Slice(coded, func(i, j int) bool {
		if coded[i].Count != coded[j].Count {
			return coded[i].Count > coded[j].Count
		}
		return coded[i].Key < coded[j].Key
	})
	if len(coded) > topFailureCodeLimit {
		coded = coded[:topFailureCodeLimit]
	}

	out := make([]dto.FailureCodeShare, 0, len(coded))
	for _, g := range coded {
		pct := decimal.NewFromInt(int64(g.Count)).
			Div(decimal.NewFromInt(int64(total))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
		out = append(out, dto.FailureCodeShare{Code: g.Key, Percentage: pct})
	}
	return out
}
