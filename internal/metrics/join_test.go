package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type order struct {
	ID         string
	CustomerID string
}

type account struct {
	ID   string
	Name string
}

func TestInnerJoin(t *testing.T) {
	orders := []order{
		{ID: "o1", CustomerID: "c1"},
		{ID: "o2", CustomerID: "c2"},
		{ID: "o3", CustomerID: "missing"},
		{ID: "o4", CustomerID: "c1"},
		{ID: "o5", CustomerID: ""},
	}
	accounts := []account{
		{ID: "c1", Name: "Ada"},
		{ID: "c2", Name: "Grace"},
		{ID: "c3", Name: "Unreferenced"},
	}

	joined := InnerJoin(orders, accounts,
		func(o order) string { return o.CustomerID },
		func(a account) string { return a.ID },
		func(o order, a account) string { return o.ID + ":" + a.Name },
	)

	// Unmatched rows on both sides drop; left order is preserved.
	assert.Equal(t, []string{"o1:Ada", "o2:Grace", "o4:Ada"}, joined)
}

func TestInnerJoin_FanOut(t *testing.T) {
	orders := []order{{ID: "o1", CustomerID: "c1"}}
	accounts := []account{
		{ID: "c1", Name: "first"},
		{ID: "c1", Name: "second"},
	}

	joined := InnerJoin(orders, accounts,
		func(o order) string { return o.CustomerID },
		func(a account) string { return a.ID },
		func(o order, a account) string { return a.Name },
	)

	// One output row per matching pair, right order within the left row.
	assert.Equal(t, []string{"first", "second"}, joined)
}

func TestInnerJoin_NoMatches(t *testing.T) {
	orders := []order{{ID: "o1", CustomerID: "c9"}}
	accounts := []account{{ID: "c1", Name: "Ada"}}

	joined := InnerJoin(orders, accounts,
		func(o order) string { return o.CustomerID },
		func(a account) string { return a.ID },
		func(o order, a account) string { return o.ID },
	)

	assert.Empty(t, joined)
}
