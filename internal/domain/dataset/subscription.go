package dataset

import (
	"github.com/braintap/kpi-engine/internal/types"
)

// SubscriptionRecord is one row of the subscription export. A customer may
// appear multiple times, once per subscription (or trial) they started.
type SubscriptionRecord struct {
	CustomerID string                   `csv:"customer_id" json:"customer_id"`
	Status     types.SubscriptionStatus `csv:"status" json:"status"`
	TrialStart types.CSVTime            `csv:"trial_start" json:"trial_start"`
	TrialEnd   types.CSVTime            `csv:"trial_end" json:"trial_end"`
	Created    types.CSVTime            `csv:"created" json:"created"`
	Start      types.CSVTime            `csv:"start" json:"start"`
}
