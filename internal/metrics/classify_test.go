package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/braintap/kpi-engine/internal/domain/dataset"
)

func TestSplitSubscriptionProduct(t *testing.T) {
	records := []dataset.RevenueRecord{
		{InvoiceNumber: "1", Description: "Monthly Subscription"},
		{InvoiceNumber: "2", Description: "SUBSCRIPTION renewal"},
		{InvoiceNumber: "3", Description: "Focus headset"},
		{InvoiceNumber: "4", Description: ""},
		{InvoiceNumber: "5", Description: "Subscription Box"},
	}

	subscriptions, products := SplitSubscriptionProduct(records)

	subIDs := invoiceNumbers(subscriptions)
	prodIDs := invoiceNumbers(products)

	assert.Equal(t, []string{"1", "2", "5"}, subIDs)
	assert.Equal(t, []string{"3", "4"}, prodIDs)

	// Exhaustive and mutually exclusive.
	assert.Len(t, subscriptions, len(records)-len(products))
	for _, r := range subscriptions {
		assert.NotContains(t, prodIDs, r.InvoiceNumber)
	}
}

func TestIsSubscriptionLine_CaseInsensitive(t *testing.T) {
	assert.True(t, IsSubscriptionLine(dataset.RevenueRecord{Description: "sUbScRiPtIoN plan"}))
	assert.False(t, IsSubscriptionLine(dataset.RevenueRecord{Description: "one-time purchase"}))
	assert.False(t, IsSubscriptionLine(dataset.RevenueRecord{}))
}

func invoiceNumbers(records []dataset.RevenueRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.InvoiceNumber
	}
	return out
}
