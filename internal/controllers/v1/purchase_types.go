package v1

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// PurchaseEditable are the fields of a purchase as they arrive from the
// form. All values are strings and are validated before any booking runs.
type PurchaseEditable struct {
	ProductName string `form:"product_name" json:"productName" example:"Widget"`   // Name of the product to buy
	UnitPrice   string `form:"unit_price" json:"unitPrice" example:"10.00"`        // Price per unit, positive decimal
	Quantity    string `form:"number_of_pieces" json:"quantity" example:"5"`       // Number of units, positive integer
}

// purchase is the validated form of PurchaseEditable.
type purchase struct {
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int64
}

// parse validates the raw form fields.
//
// The field check runs before the numeric parse so an empty form reports
// missing fields, not unparsable numbers. The unit price is rounded to two
// fraction digits before any further calculation.
func (editable PurchaseEditable) parse() (purchase, error) {
	if editable.ProductName == "" || editable.UnitPrice == "" || editable.Quantity == "" {
		return purchase{}, errMissingFields
	}

	unitPrice, err := decimal.NewFromString(editable.UnitPrice)
	if err != nil {
		return purchase{}, errInvalidNumber
	}

	quantity, err := strconv.ParseInt(editable.Quantity, 10, 64)
	if err != nil {
		return purchase{}, errInvalidNumber
	}

	if !unitPrice.IsPositive() || quantity <= 0 {
		return purchase{}, errNotPositive
	}

	return purchase{
		ProductName: editable.ProductName,
		UnitPrice:   unitPrice.Round(2),
		Quantity:    quantity,
	}, nil
}

type PurchaseResponse struct {
	Data    *Transaction `json:"data"`                                                         // The ledger entry created by the purchase
	Message *string      `json:"message" example:"successful purchase! Product: Widget, total: 50.00"` // The success notice, if the purchase was booked
	Error   *string      `json:"error" example:"you do not have enough balance to make the purchase"`  // The error, if any occurred
}
