package dataset

import (
	"context"

	ierr "github.com/braintap/kpi-engine/internal/errors"
	"github.com/braintap/kpi-engine/internal/types"
)

// Snapshot holds one immutable load of the five raw datasets. Downstream
// computations derive new values from it and never mutate it.
type Snapshot struct {
	Revenue          []RevenueRecord
	Customers        []CustomerRecord
	Subscriptions    []SubscriptionRecord
	Payments         []PaymentRecord
	FinancialSummary []FinancialSummaryRecord
}

// Repository loads a snapshot from wherever the raw exports live.
type Repository interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Store exposes a loaded snapshot read-only. The zero value is empty but
// usable; the snapshot slices must not be written through.
type Store struct {
	snapshot Snapshot
}

// NewStore wraps a snapshot.
func NewStore(snapshot Snapshot) *Store {
	return &Store{snapshot: snapshot}
}

// Snapshot returns the held snapshot.
func (s *Store) Snapshot() Snapshot {
	return s.snapshot
}

// Get returns the collection for the named dataset, failing with
// ErrUnknownDataset for unrecognized names. Callers that know the kind
// statically should prefer the typed accessors.
func (s *Store) Get(kind types.DatasetKind) (interface{}, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	switch kind {
	case types.DatasetRevenue:
		return s.snapshot.Revenue, nil
	case types.DatasetCustomers:
		return s.snapshot.Customers, nil
	case types.DatasetSubscriptions:
		return s.snapshot.Subscriptions, nil
	case types.DatasetPayments:
		return s.snapshot.Payments, nil
	default:
		return s.snapshot.FinancialSummary, nil
	}
}

// Len returns the record count of the named dataset.
func (s *Store) Len(kind types.DatasetKind) (int, error) {
	switch kind {
	case types.DatasetRevenue:
		return len(s.snapshot.Revenue), nil
	case types.DatasetCustomers:
		return len(s.snapshot.Customers), nil
	case types.DatasetSubscriptions:
		return len(s.snapshot.Subscriptions), nil
	case types.DatasetPayments:
		return len(s.snapshot.Payments), nil
	case types.DatasetFinancialSummary:
		return len(s.snapshot.FinancialSummary), nil
	default:
		return 0, ierr.NewErrorf("unknown dataset: %s", kind).
			WithHintf("Dataset %q is not one of the recognized datasets", string(kind)).
			Mark(ierr.ErrUnknownDataset)
	}
}

func (s *Store) Revenue() []RevenueRecord {
	return s.snapshot.Revenue
}

func (s *Store) Customers() []CustomerRecord {
	return s.snapshot.Customers
}

func (s *Store) Subscriptions() []SubscriptionRecord {
	return s.snapshot.Subscriptions
}

func (s *Store) Payments() []PaymentRecord {
	return s.snapshot.Payments
}

func (s *Store) FinancialSummary() []FinancialSummaryRecord {
	return s.snapshot.FinancialSummary
}
