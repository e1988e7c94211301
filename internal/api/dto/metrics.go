package dto

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/braintap/kpi-engine/internal/errors"
	"github.com/braintap/kpi-engine/internal/metrics"
	"github.com/braintap/kpi-engine/internal/types"
)

// MetricsRequest selects a view, an optional inclusive date window and an
// optional subset of the view's display columns.
type MetricsRequest struct {
	View    types.ViewKind  `json:"view"`
	Range   types.DateRange `json:"range"`
	Columns []string        `json:"columns,omitempty"`
}

// Validate checks the view selector and any requested columns against the
// view's allow-list. The range needs no validation: unset bounds resolve
// from the data and an inverted range legally matches nothing.
func (r *MetricsRequest) Validate() error {
	if err := r.View.Validate(); err != nil {
		return err
	}
	return types.ValidateDisplayColumns(r.View, r.Columns)
}

// ParseRangeBound parses a request bound given as 2006-01-02 or RFC3339.
func ParseRangeBound(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, ierr.NewErrorf("invalid date bound: %s", s).
		WithHint("Date bounds must be formatted as YYYY-MM-DD or RFC3339").
		WithReportableDetails(map[string]interface{}{
			"value": s,
		}).
		Mark(ierr.ErrValidation)
}

// ViewResponse is the structured metrics snapshot for one view. Exactly one
// of the per-view sections is populated, matching the requested view.
type ViewResponse struct {
	View           types.ViewKind  `json:"view"`
	Range          types.DateRange `json:"range"`
	DisplayColumns []string        `json:"display_columns,omitempty"`

	Summary       *SummaryMetrics       `json:"summary,omitempty"`
	Revenue       *RevenueMetrics       `json:"revenue,omitempty"`
	Customers     *CustomersMetrics     `json:"customers,omitempty"`
	Subscriptions *SubscriptionsMetrics `json:"subscriptions,omitempty"`
	Payment       *PaymentMetrics       `json:"payment,omitempty"`
	Financial     *FinancialMetrics     `json:"financial,omitempty"`
}

// SummaryMetrics reports new-customer and new-subscription counts relative
// to the latest day present in the revenue export.
type SummaryMetrics struct {
	LatestDay time.Time `json:"latest_day"`

	NewCustomersToday      int `json:"new_customers_today"`
	NewCustomersLast7Days  int `json:"new_customers_last_7_days"`
	NewCustomersLast30Days int `json:"new_customers_last_30_days"`

	NewSubscriptionsToday      int `json:"new_subscriptions_today"`
	NewSubscriptionsLast7Days  int `json:"new_subscriptions_last_7_days"`
	NewSubscriptionsLast30Days int `json:"new_subscriptions_last_30_days"`
}

// TaxFeePoint is one month of the combined tax and fee series.
type TaxFeePoint struct {
	Month string          `json:"month"`
	Tax   decimal.Decimal `json:"tax"`
	Fee   decimal.Decimal `json:"fee"`
}

// RevenueMetrics is the revenue view snapshot.
type RevenueMetrics struct {
	TotalTransactionAmount  decimal.Decimal `json:"total_transaction_amount"`
	TotalSubscriptionAmount decimal.Decimal `json:"total_subscription_amount"`
	TotalProductAmount      decimal.Decimal `json:"total_product_amount"`
	TotalTaxAmount          decimal.Decimal `json:"total_tax_amount"`

	MonthlyNetAmount []metrics.GroupValue `json:"monthly_net_amount"`
	MonthlyTax       []metrics.GroupValue `json:"monthly_tax"`
	MonthlyTaxAndFee []TaxFeePoint        `json:"monthly_tax_and_fee"`

	TopCustomers []metrics.RankedEntry `json:"top_customers"`
	TopProducts  []metrics.RankedEntry `json:"top_products"`

	SubscriptionCounts []metrics.GroupCount `json:"subscription_counts"`

	// Month-name keyed trends over the full dataset, with period-over-period
	// percent change.
	TransactionTrend  []metrics.TrendPoint `json:"transaction_trend"`
	SubscriptionTrend []metrics.TrendPoint `json:"subscription_trend"`
	ProductTrend      []metrics.TrendPoint `json:"product_trend"`
	TaxTrend          []metrics.TrendPoint `json:"tax_trend"`
}

// CustomersMetrics is the customers view snapshot.
type CustomersMetrics struct {
	TotalCustomers    int `json:"total_customers"`
	ActiveCustomers   int `json:"active_customers"`
	InactiveCustomers int `json:"inactive_customers"`
	TrialingCustomers int `json:"trialing_customers"`

	MonthlySignups []metrics.GroupCount `json:"monthly_signups"`
	SignupsByMonth []metrics.GroupCount `json:"signups_by_month"`

	TopCities    []metrics.RankedEntry `json:"top_cities"`
	TopCountries []metrics.RankedEntry `json:"top_countries"`
}

// TrialCustomerRow is one joined subscription/customer row of the trial
// listing, restricted to the view's display allow-list.
type TrialCustomerRow struct {
	Name       string        `json:"name"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	TrialStart types.CSVTime `json:"trial_start"`
	TrialEnd   types.CSVTime `json:"trial_end"`
}

// BreakdownPoint is one (bucket, key) cell of a trend broken down by a
// categorical field.
type BreakdownPoint struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Count  int    `json:"count"`
}

// SubscriptionsMetrics is the subscriptions view snapshot.
type SubscriptionsMetrics struct {
	ActiveSubscriptions            int `json:"active_subscriptions"`
	InactiveSubscriptions          int `json:"inactive_subscriptions"`
	TrialingSubscriptions          int `json:"trialing_subscriptions"`
	PastDueSubscriptions           int `json:"past_due_subscriptions"`
	PausedSubscriptions            int `json:"paused_subscriptions"`
	IncompleteExpiredSubscriptions int `json:"incomplete_expired_subscriptions"`

	TrialCustomers []TrialCustomerRow `json:"trial_customers"`

	MonthlySubscriptions     []metrics.GroupCount `json:"monthly_subscriptions"`
	DailyActiveSubscriptions []metrics.GroupCount `json:"daily_active_subscriptions"`
	RepeatTrialCustomers     []metrics.GroupCount `json:"repeat_trial_customers"`

	StatusTrend              []BreakdownPoint `json:"status_trend"`
	RevenueSubscriptionTrend []BreakdownPoint `json:"revenue_subscription_trend"`
}

// FailureCodeShare is one failure code with its share of failed payments.
type FailureCodeShare struct {
	Code       string          `json:"code"`
	Percentage decimal.Decimal `json:"percentage"`
}

// PaymentMetrics is the payment view snapshot.
type PaymentMetrics struct {
	TotalTransactions      int `json:"total_transactions"`
	SuccessfulTransactions int `json:"successful_transactions"`
	FailedTransactions     int `json:"failed_transactions"`

	TopRefundedDescriptions []metrics.RankedEntry `json:"top_refunded_descriptions"`

	// StatusDistribution is only populated when both succeeded and failed
	// payments exist in the window.
	StatusDistribution []metrics.RankedEntry `json:"status_distribution,omitempty"`

	TopFailureCodes       []FailureCodeShare    `json:"top_failure_codes"`
	FrequentRefundAmounts []metrics.RankedEntry `json:"frequent_refund_amounts"`
}

// FinancialMetrics is the financial view snapshot.
type FinancialMetrics struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalRefunds  decimal.Decimal `json:"total_refunds"`
	TotalPayouts  decimal.Decimal `json:"total_payouts"`
	NetProfitLoss decimal.Decimal `json:"net_profit_loss"`

	SalesSeries         []metrics.GroupValue `json:"sales_series"`
	RefundsSeries       []metrics.GroupValue `json:"refunds_series"`
	PayoutsSeries       []metrics.GroupValue `json:"payouts_series"`
	NetProfitLossSeries []metrics.GroupValue `json:"net_profit_loss_series"`
}
