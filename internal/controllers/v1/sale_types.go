package v1

import (
	"strconv"
)

// SaleEditable are the fields of a sale as they arrive from the form.
type SaleEditable struct {
	ProductName string `form:"product_name" json:"productName" example:"Widget"` // Name of the product to sell
	Quantity    string `form:"number_of_pieces" json:"quantity" example:"3"`     // Number of units, positive integer
}

// sale is the validated form of SaleEditable.
type sale struct {
	ProductName string
	Quantity    int64
}

// parse validates the raw form fields.
func (editable SaleEditable) parse() (sale, error) {
	if editable.ProductName == "" || editable.Quantity == "" {
		return sale{}, errMissingFields
	}

	quantity, err := strconv.ParseInt(editable.Quantity, 10, 64)
	if err != nil {
		return sale{}, errInvalidNumber
	}

	if quantity <= 0 {
		return sale{}, errNotPositive
	}

	return sale{
		ProductName: editable.ProductName,
		Quantity:    quantity,
	}, nil
}

type SaleResponse struct {
	Data    *Transaction `json:"data"`                                                        // The ledger entry created by the sale
	Message *string      `json:"message" example:"successful sale! Product: Widget, total: 45.00"` // The success notice, if the sale was booked
	Error   *string      `json:"error" example:"there is not enough stock to make the sale"`       // The error, if any occurred
}
