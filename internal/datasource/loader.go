package datasource

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/braintap/kpi-engine/internal/config"
	"github.com/braintap/kpi-engine/internal/domain/dataset"
	"github.com/braintap/kpi-engine/internal/logger"
	"github.com/braintap/kpi-engine/internal/types"
)

// Loader fetches and decodes the five raw exports into one snapshot. It
// implements dataset.Repository.
type Loader struct {
	fetcher Fetcher
	keys    config.DatasetKeys
	logger  *logger.Logger
}

// NewLoader builds a snapshot loader over the configured fetcher.
func NewLoader(fetcher Fetcher, cfg *config.Configuration, log *logger.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		keys:    cfg.Datasource.Keys,
		logger:  log,
	}
}

// Load fetches the five datasets concurrently and returns the decoded
// snapshot. Any dataset failing to fetch or decode fails the load; partial
// snapshots would silently skew every derived metric.
func (l *Loader) Load(ctx context.Context) (*dataset.Snapshot, error) {
	snapshot := &dataset.Snapshot{}

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		return loadInto(ctx, l, types.DatasetRevenue, &snapshot.Revenue)
	})
	p.Go(func(ctx context.Context) error {
		return loadInto(ctx, l, types.DatasetCustomers, &snapshot.Customers)
	})
	p.Go(func(ctx context.Context) error {
		return loadInto(ctx, l, types.DatasetSubscriptions, &snapshot.Subscriptions)
	})
	p.Go(func(ctx context.Context) error {
		return loadInto(ctx, l, types.DatasetPayments, &snapshot.Payments)
	})
	p.Go(func(ctx context.Context) error {
		return loadInto(ctx, l, types.DatasetFinancialSummary, &snapshot.FinancialSummary)
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}

	l.logger.Infow("loaded dataset snapshot",
		"revenue", len(snapshot.Revenue),
		"customers", len(snapshot.Customers),
		"subscriptions", len(snapshot.Subscriptions),
		"payments", len(snapshot.Payments),
		"financial_summary", len(snapshot.FinancialSummary),
	)
	return snapshot, nil
}

func loadInto[T any](ctx context.Context, l *Loader, kind types.DatasetKind, out *[]T) error {
	key := l.keys.ForDataset(kind)
	data, err := l.fetcher.Fetch(ctx, key)
	if err != nil {
		l.logger.Errorw("failed to fetch dataset", "dataset", kind, "key", key, "error", err)
		return err
	}

	if err := decodeCSV(kind, data, out); err != nil {
		l.logger.Errorw("failed to decode dataset", "dataset", kind, "key", key, "error", err)
		return err
	}

	l.logger.Debugw("decoded dataset", "dataset", kind, "records", len(*out))
	return nil
}
