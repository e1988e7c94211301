package datasource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braintap/kpi-engine/internal/config"
	ierr "github.com/braintap/kpi-engine/internal/errors"
	"github.com/braintap/kpi-engine/internal/logger"
)

var loaderFixtures = map[string]string{
	"KPI_Revenue_total_counts.csv": "customer_id,created,subscription,description,total_invoice_amount,fee,tax,net_amount,email\n" +
		"cus_1,2025-01-10,sub_1,Monthly Subscription,100,2,10,88,a@example.com\n" +
		"cus_2,2025-01-12,,Focus headset,50,1,5,44,b@example.com\n",
	"customers_6months.csv": "id,created,shipping_address_city,shipping_address_country\n" +
		"cus_1,2025-01-01,Berlin,DE\n",
	"subscriptions_6months.csv": "customer_id,status,trial_start,trial_end,created,start\n" +
		"cus_1,active,2025-01-01,2025-01-15,2025-01-01,2025-01-15\n",
	"payments_outcome_data.csv": "id,amount_refunded,refunded,created_date,description,status,failure_code\n" +
		"py_1,0,false,2025-01-11,Monthly Subscription,succeeded,\n",
	"financial.csv": "month,total_sales,total_refunds,total_payouts,net_profit_loss\n" +
		"2025-01,150,10,100,40\n",
}

func writeLoaderFixtures(t *testing.T) *config.Configuration {
	t.Helper()
	dir := t.TempDir()
	for name, body := range loaderFixtures {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	cfg := config.GetDefaultConfig()
	cfg.Datasource.Local.Dir = dir
	return cfg
}

func TestLoader_Load(t *testing.T) {
	cfg := writeLoaderFixtures(t)
	loader := NewLoader(NewLocalFetcher(cfg.Datasource.Local), cfg, logger.GetLogger())

	snapshot, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snapshot.Revenue, 2)
	assert.Len(t, snapshot.Customers, 1)
	assert.Len(t, snapshot.Subscriptions, 1)
	assert.Len(t, snapshot.Payments, 1)
	assert.Len(t, snapshot.FinancialSummary, 1)

	assert.Equal(t, "sub_1", snapshot.Revenue[0].SubscriptionID)
	assert.Equal(t, "100", snapshot.Revenue[0].TotalInvoiceAmount.String())
}

func TestLoader_Load_FailsOnBrokenDataset(t *testing.T) {
	cfg := writeLoaderFixtures(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.Datasource.Local.Dir, "financial.csv"),
		[]byte("month,currency\n2025-01,usd\n"), 0o644))

	loader := NewLoader(NewLocalFetcher(cfg.Datasource.Local), cfg, logger.GetLogger())

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, ierr.IsMissingField(err))
}
