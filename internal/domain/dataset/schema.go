package dataset

import (
	"github.com/braintap/kpi-engine/internal/types"
)

// requiredColumns declares, per dataset, the CSV columns a view computation
// depends on. A header missing one of these surfaces as ErrMissingField at
// load time rather than as silent zero values downstream.
var requiredColumns = map[types.DatasetKind][]string{
	types.DatasetRevenue: {
		"customer_id", "created", "subscription", "description",
		"total_invoice_amount", "fee", "tax", "net_amount", "email",
	},
	types.DatasetCustomers: {
		"id", "created", "shipping_address_city", "shipping_address_country",
	},
	types.DatasetSubscriptions: {
		"customer_id", "status", "trial_start", "trial_end", "created", "start",
	},
	types.DatasetPayments: {
		"id", "amount_refunded", "refunded", "created_date", "description",
		"status", "failure_code",
	},
	types.DatasetFinancialSummary: {
		"month", "total_sales", "total_refunds", "total_payouts", "net_profit_loss",
	},
}

// RequiredColumns returns the columns the engine needs from a dataset.
func RequiredColumns(kind types.DatasetKind) []string {
	cols := requiredColumns[kind]
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}
