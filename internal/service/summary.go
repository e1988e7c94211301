package service

import (
	"context"
	"time"

	"github.com/braintap/kpi-engine/internal/api/dto"
	"github.com/braintap/kpi-engine/internal/domain/dataset"
	"github.com/braintap/kpi-engine/internal/metrics"
	"github.com/braintap/kpi-engine/internal/types"
)

// getSummary computes new-user and new-subscription counts for the latest
// day present in the revenue export, the 7 days before it and the 30 days
// before it. The trailing windows exclude the latest day itself.
func (s *metricsService) getSummary(ctx context.Context) *dto.SummaryMetrics {
	revenue := s.Store.Revenue()

	latest, ok := metrics.LatestTimestamp(revenue, func(r dataset.RevenueRecord) types.CSVTime { return r.Created })
	if !ok {
		s.Logger.WithContext(ctx).Warnw("summary view computed over revenue export with no parseable timestamps")
		return &dto.SummaryMetrics{}
	}

	latestDay := truncateToDay(latest)
	last7 := latestDay.AddDate(0, 0, -7)
	last30 := latestDay.AddDate(0, 0, -30)

	onDay := func(r dataset.RevenueRecord) bool {
		return r.Created.Valid && r.Created.Date().Equal(latestDay)
	}
	inWindow := func(from time.Time) func(dataset.RevenueRecord) bool {
		return func(r dataset.RevenueRecord) bool {
			if !r.Created.Valid {
				return false
			}
			d := r.Created.Date()
			return !d.Before(from) && d.Before(latestDay)
		}
	}

	customerID := func(r dataset.RevenueRecord) string { return r.CustomerID }
	subscriptionID := func(r dataset.RevenueRecord) string { return r.SubscriptionID }

	return &dto.SummaryMetrics{
		LatestDay: latestDay,

		NewCustomersToday:      metrics.DistinctCount(filterRecords(revenue, onDay), customerID),
		NewCustomersLast7Days:  metrics.DistinctCount(filterRecords(revenue, inWindow(last7)), customerID),
		NewCustomersLast30Days: metrics.DistinctCount(filterRecords(revenue, inWindow(last30)), customerID),

		NewSubscriptionsToday:      metrics.DistinctCount(filterRecords(revenue, onDay), subscriptionID),
		NewSubscriptionsLast7Days:  metrics.DistinctCount(filterRecords(revenue, inWindow(last7)), subscriptionID),
		NewSubscriptionsLast30Days: metrics.DistinctCount(filterRecords(revenue, inWindow(last30)), subscriptionID),
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func filterRecords[T any](records []T, pred func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
