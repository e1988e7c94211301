package types

import (
	ierr "github.com/braintap/kpi-engine/internal/errors"
)

// DatasetKind identifies one of the five raw datasets the engine consumes.
type DatasetKind string

const (
	DatasetRevenue          DatasetKind = "revenue"
	DatasetCustomers        DatasetKind = "customers"
	DatasetSubscriptions    DatasetKind = "subscriptions"
	DatasetPayments         DatasetKind = "payments"
	DatasetFinancialSummary DatasetKind = "financial_summary"
)

// AllDatasetKinds lists every recognized dataset.
func AllDatasetKinds() []DatasetKind {
	return []DatasetKind{
		DatasetRevenue,
		DatasetCustomers,
		DatasetSubscriptions,
		DatasetPayments,
		DatasetFinancialSummary,
	}
}

// Validate fails with ErrUnknownDataset naming the identifier when the kind
// is not one of the five recognized datasets.
func (k DatasetKind) Validate() error {
	switch k {
	case DatasetRevenue, DatasetCustomers, DatasetSubscriptions, DatasetPayments, DatasetFinancialSummary:
		return nil
	default:
		return ierr.NewErrorf("unknown dataset: %s", k).
			WithHintf("Dataset %q is not one of the recognized datasets", string(k)).
			WithReportableDetails(map[string]interface{}{
				"dataset": string(k),
			}).
			Mark(ierr.ErrUnknownDataset)
	}
}

func (k DatasetKind) String() string {
	return string(k)
}
