package dataset

import (
	"github.com/braintap/kpi-engine/internal/types"
)

// CustomerRecord is one row of the customer export.
type CustomerRecord struct {
	ID                     string        `csv:"id" json:"id"`
	Created                types.CSVTime `csv:"created" json:"created"`
	Email                  string        `csv:"email" json:"email"`
	Phone                  string        `csv:"phone" json:"phone"`
	Name                   string        `csv:"name" json:"name"`
	ShippingAddressCity    string        `csv:"shipping_address_city" json:"shipping_address_city"`
	ShippingAddressCountry string        `csv:"shipping_address_country" json:"shipping_address_country"`
}
