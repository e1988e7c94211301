package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/braintap/kpi-engine/internal/domain/dataset"
	"github.com/braintap/kpi-engine/internal/types"
)

// MustTime parses a 2006-01-02 or RFC3339 timestamp into a valid cell,
// panicking on malformed input. Fixtures only.
func MustTime(s string) types.CSVTime {
	for _, layout := range []string{"2006-01-02", "2006-01", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return types.CSVTime{Time: t.UTC(), Valid: true}
		}
	}
	panic("testutil: unparseable fixture timestamp " + s)
}

// InvalidTime is a cell whose source value failed to parse.
func InvalidTime() types.CSVTime {
	return types.CSVTime{}
}

// Amount builds an amount cell from its decimal string form.
func Amount(s string) types.CSVAmount {
	return types.CSVAmount{Decimal: decimal.RequireFromString(s)}
}

// RevenueRow builds a revenue line item with the fields the views read.
func RevenueRow(customerID, created, subscriptionID, description, email, amount string) dataset.RevenueRecord {
	r := dataset.RevenueRecord{
		CustomerID:         customerID,
		SubscriptionID:     subscriptionID,
		Description:        description,
		Email:              email,
		TotalInvoiceAmount: Amount(amount),
	}
	if created != "" {
		r.Created = MustTime(created)
	}
	return r
}

// CustomerRow builds a customer record.
func CustomerRow(id, created, city, country string) dataset.CustomerRecord {
	c := dataset.CustomerRecord{
		ID:                     id,
		ShippingAddressCity:    city,
		ShippingAddressCountry: country,
	}
	if created != "" {
		c.Created = MustTime(created)
	}
	return c
}

// SubscriptionRow builds a subscription record keyed by its trial window.
func SubscriptionRow(customerID string, status types.SubscriptionStatus, trialStart, trialEnd, created string) dataset.SubscriptionRecord {
	s := dataset.SubscriptionRecord{
		CustomerID: customerID,
		Status:     status,
	}
	if trialStart != "" {
		s.TrialStart = MustTime(trialStart)
	}
	if trialEnd != "" {
		s.TrialEnd = MustTime(trialEnd)
		s.Start = s.TrialEnd
	}
	if created != "" {
		s.Created = MustTime(created)
	}
	return s
}

// PaymentRow builds a payment attempt record.
func PaymentRow(id, createdDate string, status types.PaymentStatus, description, failureCode string, refunded bool, amountRefunded string) dataset.PaymentRecord {
	p := dataset.PaymentRecord{
		ID:          id,
		Status:      status,
		Description: description,
		FailureCode: failureCode,
		Refunded:    types.CSVBool{Value: refunded},
	}
	if createdDate != "" {
		p.CreatedDate = MustTime(createdDate)
	}
	if amountRefunded != "" {
		p.AmountRefunded = Amount(amountRefunded)
	}
	return p
}

// FinancialRow builds one pre-aggregated reporting month.
func FinancialRow(month, sales, refunds, payouts, netProfitLoss string) dataset.FinancialSummaryRecord {
	return dataset.FinancialSummaryRecord{
		Month:         MustTime(month),
		TotalSales:    Amount(sales),
		TotalRefunds:  Amount(refunds),
		TotalPayouts:  Amount(payouts),
		NetProfitLoss: Amount(netProfitLoss),
	}
}
