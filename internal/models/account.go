package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is the single cash account tracked by the backend.
//
// Exactly one row exists, it is created when the database is initialized
// for the first time.
type Account struct {
	DefaultModel
	Balance decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)" example:"950.00"` // Current cash balance
}

// GetAccount returns the singleton account.
func GetAccount(db *gorm.DB) (Account, error) {
	var account Account
	err := db.Order("datetime(accounts.created_at) ASC").First(&account).Error
	return account, err
}
