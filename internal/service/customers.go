package service

import (
	"context"
	"time"

	"github.com/braintap/kpi-engine/internal/api/dto"
	"github.com/braintap/kpi-engine/internal/domain/dataset"
	"github.com/braintap/kpi-engine/internal/metrics"
	"github.com/braintap/kpi-engine/internal/types"
)

const (
	topCitiesLimit    = 10
	topCountriesLimit = 5
	signupTrailMonths = 6
)

// subscriberRow is a subscription enriched with its customer's attributes,
// the working shape of the customer and subscription views.
type subscriberRow struct {
	Subscription dataset.SubscriptionRecord
	Customer     dataset.CustomerRecord
}

// joinSubscribers inner-joins subscriptions to customers on customer id.
// Subscriptions without a matching customer (and vice versa) drop out,
// which can undercount against the standalone totals; inherited behavior.
func joinSubscribers(subscriptions []dataset.SubscriptionRecord, customers []dataset.CustomerRecord) []subscriberRow {
	return metrics.InnerJoin(subscriptions, customers,
		func(s dataset.SubscriptionRecord) string { return s.CustomerID },
		func(c dataset.CustomerRecord) string { return c.ID },
		func(s dataset.SubscriptionRecord, c dataset.CustomerRecord) subscriberRow {
			return subscriberRow{Subscription: s, Customer: c}
		},
	)
}

// getCustomers computes the customers view: subscriber status counts over
// the trial-end window, signup series over the created window, and
// geographic rankings.
func (s *metricsService) getCustomers(_ context.Context, rng types.DateRange) *dto.CustomersMetrics {
	subscriptions := metrics.FilterByRange(s.Store.Subscriptions(),
		func(r dataset.SubscriptionRecord) types.CSVTime { return r.TrialEnd }, rng)
	joined := joinSubscribers(subscriptions, s.Store.Customers())

	active := metrics.CountWhere(joined, func(r subscriberRow) bool {
		return r.Subscription.Status == types.SubscriptionStatusActive
	})
	inactive := len(joined) - active
	trialing := metrics.CountWhere(joined, func(r subscriberRow) bool {
		return r.Subscription.Status == types.SubscriptionStatusTrialing
	})

	customers := metrics.FilterByRange(s.Store.Customers(),
		func(r dataset.CustomerRecord) types.CSVTime { return r.Created }, rng)

	out := &dto.CustomersMetrics{
		// Trialing rows are also counted in the inactive complement, so the
		// total double-counts them; inherited from the source dashboard.
		TotalCustomers:    active + inactive + trialing,
		ActiveCustomers:   active,
		InactiveCustomers: inactive,
		TrialingCustomers: trialing,
	}

	out.MonthlySignups = s.monthlySignups(customers)

	signups := metrics.GroupCountBy(customers, func(r dataset.CustomerRecord) (string, bool) {
		if !r.Created.Valid {
			return "", false
		}
		return types.WindowSizeMonth.BucketKey(r.Created.Time), true
	})
	out.SignupsByMonth = metrics.ReverseCounts(signups)

	// Geographic rankings ignore rows missing either location field.
	located := filterRecords(customers, func(r dataset.CustomerRecord) bool {
		return r.ShippingAddressCity != "" && r.ShippingAddressCountry != ""
	})
	cities := metrics.GroupCountBy(located, func(r dataset.CustomerRecord) (string, bool) {
		return r.ShippingAddressCity, true
	})
	out.TopCities = metrics.TopN(metrics.RankCounts(cities), topCitiesLimit)

	countries := metrics.GroupCountBy(located, func(r dataset.CustomerRecord) (string, bool) {
		return r.ShippingAddressCountry, true
	})
	out.TopCountries = metrics.TopN(metrics.RankCounts(countries), topCountriesLimit)

	return out
}

// monthlySignups counts new customers per calendar month over the trailing
// six months from today, gap-filling empty months with zero so the chart
// axis is complete.
func (s *metricsService) monthlySignups(customers []dataset.CustomerRecord) []metrics.GroupCount {
	now := s.now()
	cutoff := now.AddDate(0, -signupTrailMonths, 0)

	recent := filterRecords(customers, func(r dataset.CustomerRecord) bool {
		return r.Created.Valid && !r.Created.Time.Before(cutoff)
	})
	counts := metrics.GroupCountBy(recent, func(r dataset.CustomerRecord) (string, bool) {
		return types.WindowSizeMonth.BucketKey(r.Created.Time), true
	})

	byMonth := make(map[string]int, len(counts))
	for _, g := range counts {
		byMonth[g.Key] = g.Count
	}

	var filled []metrics.GroupCount
	month := time.Date(cutoff.Year(), cutoff.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(last) {
		key := types.WindowSizeMonth.BucketKey(month)
		filled = append(filled, metrics.GroupCount{Key: key, Count: byMonth[key]})
		month = month.AddDate(0, 1, 0)
	}
	return filled
}
