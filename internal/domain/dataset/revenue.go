package dataset

import (
	"github.com/braintap/kpi-engine/internal/types"
)

// RevenueRecord is one invoice line item of the revenue export.
type RevenueRecord struct {
	CustomerID         string          `csv:"customer_id" json:"customer_id"`
	Created            types.CSVTime   `csv:"created" json:"created"`
	SubscriptionID     string          `csv:"subscription" json:"subscription_id"`
	InvoiceNumber      string          `csv:"invoice_number" json:"invoice_number"`
	Description        string          `csv:"description" json:"description"`
	Quantity           types.CSVInt    `csv:"quantity" json:"quantity"`
	Currency           string          `csv:"currency" json:"currency"`
	LineItemAmount     types.CSVAmount `csv:"line_item_amount" json:"line_item_amount"`
	TotalInvoiceAmount types.CSVAmount `csv:"total_invoice_amount" json:"total_invoice_amount"`
	Discount           types.CSVAmount `csv:"discount" json:"discount"`
	Fee                types.CSVAmount `csv:"fee" json:"fee"`
	Tax                types.CSVAmount `csv:"tax" json:"tax"`
	NetAmount          types.CSVAmount `csv:"net_amount" json:"net_amount"`
	Email              string          `csv:"email" json:"email"`
	Phone              string          `csv:"phone" json:"phone"`
	Name               string          `csv:"name" json:"name"`
}
