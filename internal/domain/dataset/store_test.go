package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/braintap/kpi-engine/internal/errors"
	"github.com/braintap/kpi-engine/internal/types"
)

func TestStore_Get(t *testing.T) {
	store := NewStore(Snapshot{
		Revenue:   []RevenueRecord{{CustomerID: "cus_1"}},
		Customers: []CustomerRecord{{ID: "cus_1"}, {ID: "cus_2"}},
	})

	revenue, err := store.Get(types.DatasetRevenue)
	require.NoError(t, err)
	assert.Len(t, revenue.([]RevenueRecord), 1)

	_, err = store.Get(types.DatasetKind("orders"))
	require.Error(t, err)
	assert.True(t, ierr.IsUnknownDataset(err))
}

func TestStore_Len(t *testing.T) {
	store := NewStore(Snapshot{
		Customers: []CustomerRecord{{ID: "cus_1"}, {ID: "cus_2"}},
	})

	for _, kind := range types.AllDatasetKinds() {
		n, err := store.Len(kind)
		require.NoError(t, err)
		if kind == types.DatasetCustomers {
			assert.Equal(t, 2, n)
		} else {
			assert.Equal(t, 0, n)
		}
	}

	_, err := store.Len(types.DatasetKind("orders"))
	assert.Error(t, err)
}

func TestRequiredColumns_ReturnsCopy(t *testing.T) {
	cols := RequiredColumns(types.DatasetRevenue)
	require.NotEmpty(t, cols)

	cols[0] = "mutated"
	assert.NotEqual(t, "mutated", RequiredColumns(types.DatasetRevenue)[0])
}
