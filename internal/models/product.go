package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a named inventory line with a weighted-average unit cost and
// an on-hand quantity.
//
// Products are created by the first purchase of their name and never
// deleted. Selling all stock leaves a row with a quantity of zero.
type Product struct {
	DefaultModel
	Name          string          `json:"name" gorm:"uniqueIndex" example:"Widget"`                 // Unique name of the product
	UnitPrice     decimal.Decimal `json:"unitPrice" gorm:"type:DECIMAL(20,8)" example:"15.00"`     // Weighted-average cost per unit
	StockQuantity int64           `json:"stockQuantity" example:"10"`                              // Units on hand, never negative
}

// BeforeSave trims whitespace from the product name.
func (p *Product) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	return nil
}

// AddStock books a purchased lot into the product.
//
// The unit price becomes the weighted average of the existing stock and the
// new lot, rounded to two fraction digits.
func (p *Product) AddStock(unitPrice decimal.Decimal, quantity int64) {
	existing := p.UnitPrice.Mul(decimal.NewFromInt(p.StockQuantity))
	incoming := unitPrice.Mul(decimal.NewFromInt(quantity))
	total := p.StockQuantity + quantity

	p.UnitPrice = existing.Add(incoming).Div(decimal.NewFromInt(total)).Round(2)
	p.StockQuantity = total
}

// GetProducts returns the full inventory, ordered by name.
func GetProducts(db *gorm.DB) ([]Product, error) {
	var products []Product
	err := db.Order("products.name ASC").Find(&products).Error
	return products, err
}
