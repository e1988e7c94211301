package service

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/braintap/kpi-engine/internal/api/dto"
	"github.com/braintap/kpi-engine/internal/domain/dataset"
	"github.com/braintap/kpi-engine/internal/metrics"
	"github.com/braintap/kpi-engine/internal/types"
)

const defaultSubscriptionWindowDays = 30

// getSubscriptions computes the subscriptions view. An open request range
// defaults to the trailing 30 days ending today; the resolved range is
// returned so the response can echo what was actually applied.
func (s *metricsService) getSubscriptions(_ context.Context, rng types.DateRange) (*dto.SubscriptionsMetrics, types.DateRange) {
	if rng.IsOpen() {
		rng = types.TrailingDays(s.now(), defaultSubscriptionWindowDays)
	}

	all := s.Store.Subscriptions()
	filtered := metrics.FilterByRange(all,
		func(r dataset.SubscriptionRecord) types.CSVTime { return r.TrialEnd }, rng)

	active := countStatus(filtered, types.SubscriptionStatusActive)
	out := &dto.SubscriptionsMetrics{
		ActiveSubscriptions:   active,
		InactiveSubscriptions: len(filtered) - active,
		TrialingSubscriptions: countStatus(filtered, types.SubscriptionStatusTrialing),
		PastDueSubscriptions:  countStatus(filtered, types.SubscriptionStatusPastDue),
		PausedSubscriptions:   countStatus(filtered, types.SubscriptionStatusPaused),
		// Counted over the full export rather than the window; inherited
		// from the source dashboard.
		IncompleteExpiredSubscriptions: countStatus(all, types.SubscriptionStatusIncompleteExpired),
	}

	joined := joinSubscribers(filtered, s.Store.Customers())
	out.TrialCustomers = lo.Map(joined, func(row subscriberRow, _ int) dto.TrialCustomerRow {
		return dto.TrialCustomerRow{
			Name:       row.Customer.Name,
			Phone:      row.Customer.Phone,
			Email:      row.Customer.Email,
			TrialStart: row.Subscription.TrialStart,
			TrialEnd:   row.Subscription.TrialEnd,
		}
	})

	out.MonthlySubscriptions = metrics.GroupCountBy(filtered, func(r dataset.SubscriptionRecord) (string, bool) {
		if !r.Created.Valid {
			return "", false
		}
		return types.WindowSizeMonth.BucketKey(r.Created.Time), true
	})

	out.DailyActiveSubscriptions = metrics.GroupCountBy(filtered, func(r dataset.SubscriptionRecord) (string, bool) {
		if r.Status != types.SubscriptionStatusActive || !r.Created.Valid {
			return "", false
		}
		return types.WindowSizeDay.BucketKey(r.Created.Time), true
	})

	out.RepeatTrialCustomers = repeatTrialCustomers(joined)
	out.StatusTrend = statusTrend(all)
	out.RevenueSubscriptionTrend = revenueSubscriptionTrend(s.Store.Revenue())

	return out, rng
}

func countStatus(records []dataset.SubscriptionRecord, status types.SubscriptionStatus) int {
	return metrics.CountWhere(records, func(r dataset.SubscriptionRecord) bool {
		return r.Status == status
	})
}

// repeatTrialCustomers lists customers holding more than one trial in the
// window, most trials first.
func repeatTrialCustomers(joined []subscriberRow) []metrics.GroupCount {
	perCustomer := metrics.GroupCountBy(joined, func(r subscriberRow) (string, bool) {
		if r.Subscription.CustomerID == "" {
			return "", false
		}
		return r.Subscription.CustomerID, true
	})

	repeats := lo.Filter(perCustomer, func(g metrics.GroupCount, _ int) bool {
		return g.Count > 1
	})
	sort.Slice(repeats, func(i, j int) bool {
		if repeats[i].Count != repeats[j].Count {
			return repeats[i].Count > repeats[j].Count
		}
		return repeats[i].Key < repeats[j].Key
	})
	return repeats
}

// statusTrend counts subscriptions per (start month, status) over the full
// export, ordered by month then status.
func statusTrend(records []dataset.SubscriptionRecord) []dto.BreakdownPoint {
	type cell struct {
		bucket string
		status string
	}
	counts := make(map[cell]int)
	for _, r := range records {
		if !r.Start.Valid {
			continue
		}
		counts[cell{
			bucket: types.WindowSizeMonth.BucketKey(r.Start.Time),
			status: string(r.Status),
		}]++
	}

	out := make([]dto.BreakdownPoint, 0, len(counts))
	for c, n := range counts {
		out = append(out, dto.BreakdownPoint{Bucket: c.bucket, Key: c.status, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bucket != out[j].Bucket {
			return out[i].Bucket < out[j].Bucket
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// revenueSubscriptionTrend counts revenue lines per (invoice month,
// subscription id) over the full revenue export. Buckets carry the "Jan
// 2006" display label but order chronologically.
func revenueSubscriptionTrend(records []dataset.RevenueRecord) []dto.BreakdownPoint {
	type cell struct {
		month time.Time
		subID string
	}
	counts := make(map[cell]int)
	for _, r := range records {
		if !r.Created.Valid || r.SubscriptionID == "" {
			continue
		}
		t := r.Created.Time
		counts[cell{
			month: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC),
			subID: r.SubscriptionID,
		}]++
	}

	cells := make([]cell, 0, len(counts))
	for c := range counts {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if !cells[i].month.Equal(cells[j].month) {
			return cells[i].month.Before(cells[j].month)
		}
		return cells[i].subID < cells[j].subID
	})

	out := make([]dto.BreakdownPoint, 0, len(cells))
	for _, c := range cells {
		out = append(out, dto.BreakdownPoint{
			Bucket: c.month.Format("Jan 2006"),
			Key:    c.subID,
			Count:  counts[c],
		})
	}
	return out
}
