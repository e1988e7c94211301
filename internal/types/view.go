package types

import (
	ierr "github.com/braintap/kpi-engine/internal/errors"
)

// ViewKind selects which metrics view to compute.
type ViewKind string

const (
	ViewSummary       ViewKind = "summary"
	ViewRevenue       ViewKind = "revenue"
	ViewCustomers     ViewKind = "customers"
	ViewSubscriptions ViewKind = "subscriptions"
	ViewPayment       ViewKind = "payment"
	ViewFinancial     ViewKind = "financial"
)

// AllViewKinds lists every supported view.
func AllViewKinds() []ViewKind {
	return []ViewKind{
		ViewSummary,
		ViewRevenue,
		ViewCustomers,
		ViewSubscriptions,
		ViewPayment,
		ViewFinancial,
	}
}

// Validate fails with ErrUnknownView naming the identifier when the kind is
// not a supported view selector.
func (v ViewKind) Validate() error {
	switch v {
	case ViewSummary, ViewRevenue, ViewCustomers, ViewSubscriptions, ViewPayment, ViewFinancial:
		return nil
	default:
		return ierr.NewErrorf("unknown view: %s", v).
			WithHintf("View %q is not a supported view selector", string(v)).
			WithReportableDetails(map[string]interface{}{
				"view": string(v),
			}).
			Mark(ierr.ErrUnknownView)
	}
}

func (v ViewKind) String() string {
	return string(v)
}

// displayColumns enumerates, per view, the record fields the presentation
// layer is permitted to show. Requests outside this allow-list are rejected
// rather than resolved dynamically against the raw tables.
var displayColumns = map[ViewKind][]string{
	ViewRevenue: {
		"created", "customer_id", "email", "phone", "name", "subscription_id",
		"invoice_number", "description", "quantity", "currency", "line_item_amount",
		"total_invoice_amount", "discount", "fee", "tax", "net_amount",
	},
	ViewCustomers: {
		"id", "created", "email", "phone", "name",
		"shipping_address_city", "shipping_address_country",
	},
	ViewSubscriptions: {
		"name", "phone", "email", "trial_start", "trial_end",
	},
	ViewPayment: {
		"id", "amount", "amount_refunded", "balance_transaction_id",
		"calculated_statement_descriptor", "created_date", "currency",
		"customer_id", "description", "status",
	},
	ViewFinancial: {
		"month", "currency", "total_sales", "total_refunds", "total_payouts",
		"net_profit_loss",
	},
}

// DisplayColumns returns the allowed display fields for a view. Views with
// no record table (Summary) return nil.
func DisplayColumns(v ViewKind) []string {
	cols := displayColumns[v]
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}

// ValidateDisplayColumns checks that every requested column is within the
// view's allow-list.
func ValidateDisplayColumns(v ViewKind, requested []string) error {
	allowed := make(map[string]struct{}, len(displayColumns[v]))
	for _, c := range displayColumns[v] {
		allowed[c] = struct{}{}
	}
	for _, c := range requested {
		if _, ok := allowed[c]; !ok {
			return ierr.NewErrorf("column %s is not displayable for view %s", c, v).
				WithHintf("Column %q is not in the allow-list for view %q", c, string(v)).
				WithReportableDetails(map[string]interface{}{
					"view":   string(v),
					"column": c,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
