package datasource

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braintap/kpi-engine/internal/domain/dataset"
	ierr "github.com/braintap/kpi-engine/internal/errors"
	"github.com/braintap/kpi-engine/internal/types"
)

const customersCSV = "id,created,email,phone,name,shipping_address_city,shipping_address_country\n" +
	"cus_1,2025-01-15,a@example.com,,Ada,Berlin,DE\n" +
	"cus_2,not-a-date,b@example.com,,Grace,,\n"

func TestDecodeCSV_Customers(t *testing.T) {
	var out []dataset.CustomerRecord
	require.NoError(t, decodeCSV(types.DatasetCustomers, []byte(customersCSV), &out))

	require.Len(t, out, 2)
	assert.Equal(t, "cus_1", out[0].ID)
	assert.True(t, out[0].Created.Valid)
	assert.Equal(t, "Berlin", out[0].ShippingAddressCity)

	// A malformed timestamp keeps its row but invalidates the cell.
	assert.Equal(t, "cus_2", out[1].ID)
	assert.False(t, out[1].Created.Valid)
}

func TestDecodeCSV_MissingRequiredColumn(t *testing.T) {
	data := []byte("id,email\ncus_1,a@example.com\n")

	var out []dataset.CustomerRecord
	err := decodeCSV(types.DatasetCustomers, data, &out)

	require.Error(t, err)
	assert.True(t, ierr.IsMissingField(err))
	assert.Contains(t, err.Error(), "created")
}

func TestDecodeCSV_BOMHeader(t *testing.T) {
	data := []byte("\uFEFF" + customersCSV)

	var out []dataset.CustomerRecord
	assert.NoError(t, decodeCSV(types.DatasetCustomers, data, &out))
}

func TestDecodeCSV_EmptyInput(t *testing.T) {
	var out []dataset.CustomerRecord
	err := decodeCSV(types.DatasetCustomers, nil, &out)

	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestDecodeCSV_PaymentCells(t *testing.T) {
	data := []byte("id,amount,amount_refunded,refunded,created_date,description,status,failure_code\n" +
		"py_1,10.00,2.50,True,2025-02-01,Monthly Subscription,succeeded,\n" +
		"py_2,,,,2025-02-02,Focus headset,failed,card_declined\n")

	var out []dataset.PaymentRecord
	require.NoError(t, decodeCSV(types.DatasetPayments, data, &out))
	require.Len(t, out, 2)

	assert.True(t, out[0].Refunded.Value)
	assert.True(t, decimal.RequireFromString("2.5").Equal(out[0].AmountRefunded.Decimal))

	// Blank cells decode to zero values instead of failing the row.
	assert.False(t, out[1].Refunded.Value)
	assert.True(t, out[1].AmountRefunded.IsZero())
	assert.Equal(t, "card_declined", out[1].FailureCode)
}
