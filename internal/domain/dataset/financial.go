package dataset

import (
	"github.com/braintap/kpi-engine/internal/types"
)

// FinancialSummaryRecord is one pre-aggregated reporting month of the
// financial export.
type FinancialSummaryRecord struct {
	Month         types.CSVTime   `csv:"month" json:"month"`
	Currency      string          `csv:"currency" json:"currency"`
	TotalSales    types.CSVAmount `csv:"total_sales" json:"total_sales"`
	TotalRefunds  types.CSVAmount `csv:"total_refunds" json:"total_refunds"`
	TotalPayouts  types.CSVAmount `csv:"total_payouts" json:"total_payouts"`
	NetProfitLoss types.CSVAmount `csv:"net_profit_loss" json:"net_profit_loss"`
}
