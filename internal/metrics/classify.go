package metrics

import (
	"strings"

	"github.com/braintap/kpi-engine/internal/domain/dataset"
)

// subscriptionKeyword is the classification heuristic inherited from the
// upstream dashboard: a line item is subscription revenue iff its free-text
// description contains this substring, case-insensitively. A product that
// happens to carry the word (a "Subscription Box") is misclassified; that
// is a documented limitation, not a bug to fix here.
const subscriptionKeyword = "subscription"

// SplitSubscriptionProduct partitions revenue line items into subscription
// and product revenue. The partition is exhaustive and mutually exclusive;
// an empty description counts as product.
func SplitSubscriptionProduct(records []dataset.RevenueRecord) (subscriptions, products []dataset.RevenueRecord) {
	subscriptions = make([]dataset.RevenueRecord, 0, len(records))
	products = make([]dataset.RevenueRecord, 0, len(records))
	for _, r := range records {
		if IsSubscriptionLine(r) {
			subscriptions = append(subscriptions, r)
		} else {
			products = append(products, r)
		}
	}
	return subscriptions, products
}

// IsSubscriptionLine applies the description heuristic to a single record.
func IsSubscriptionLine(r dataset.RevenueRecord) bool {
	return strings.Contains(strings.ToLower(r.Description), subscriptionKeyword)
}
