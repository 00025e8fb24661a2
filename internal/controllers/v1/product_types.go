package v1

import (
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/models"
)

// Product is the representation of an inventory line in API v1.
type Product struct {
	models.DefaultModel
	Name          string          `json:"name" example:"Widget"`        // Unique name of the product
	UnitPrice     decimal.Decimal `json:"unitPrice" example:"15.00"`    // Weighted-average cost per unit
	StockQuantity int64           `json:"stockQuantity" example:"10"`   // Units on hand
}

// newProduct returns the API v1 representation of the resource
func newProduct(model models.Product) Product {
	return Product{
		DefaultModel:  model.DefaultModel,
		Name:          model.Name,
		UnitPrice:     model.UnitPrice,
		StockQuantity: model.StockQuantity,
	}
}

type ProductListResponse struct {
	Data  []Product `json:"data"`                                                      // The inventory, ordered by name
	Error *string   `json:"error" example:"there is no product matching your query"`   // The error, if any occurred
}
