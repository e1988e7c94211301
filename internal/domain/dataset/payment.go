package dataset

import (
	"github.com/braintap/kpi-engine/internal/types"
)

// PaymentRecord is one payment attempt of the payment outcome export.
type PaymentRecord struct {
	ID                             string              `csv:"id" json:"id"`
	Amount                         types.CSVAmount     `csv:"amount" json:"amount"`
	AmountRefunded                 types.CSVAmount     `csv:"amount_refunded" json:"amount_refunded"`
	Refunded                       types.CSVBool       `csv:"refunded" json:"refunded"`
	BalanceTransactionID           string              `csv:"balance_transaction_id" json:"balance_transaction_id"`
	CalculatedStatementDescriptor  string              `csv:"calculated_statement_descriptor" json:"calculated_statement_descriptor"`
	CreatedDate                    types.CSVTime       `csv:"created_date" json:"created_date"`
	Currency                       string              `csv:"currency" json:"currency"`
	CustomerID                     string              `csv:"customer_id" json:"customer_id"`
	Description                    string              `csv:"description" json:"description"`
	Status                         types.PaymentStatus `csv:"status" json:"status"`
	FailureCode                    string              `csv:"failure_code" json:"failure_code"`
}
