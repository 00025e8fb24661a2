package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/types"
	"gorm.io/gorm"
)

// swagger:enum TransactionKind
type TransactionKind string

const (
	KindPurchase TransactionKind = "Purchase"
	KindSale     TransactionKind = "Sale"
	KindAdd      TransactionKind = "Add"
	KindSubtract TransactionKind = "Subtract"
)

// Transaction is an immutable ledger entry recording one balance-affecting
// event and the balance immediately after it.
type Transaction struct {
	DefaultModel
	Kind             TransactionKind `json:"kind" example:"Purchase"`                                   // What kind of event this entry records
	Date             time.Time       `json:"date" example:"2024-11-03T18:43:00.271152Z"`                // Time the event was booked
	Amount           decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50.00"`          // Amount moved, signed for balance adjustments
	ResultingBalance decimal.Decimal `json:"resultingBalance" gorm:"type:DECIMAL(20,8)" example:"950"`  // Account balance after this entry
	ProductName      string          `json:"productName" example:"Widget"`                              // Product the entry refers to, empty for balance-only entries
	Cost             decimal.Decimal `json:"cost" gorm:"type:DECIMAL(20,8)" example:"50.00"`            // Magnitude of money moved, zero for balance adjustments
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	_ = t.DefaultModel.AfterFind(tx)

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// GetTransactions returns ledger entries ordered by date descending,
// limited to the inclusive day range between from and until. A zero bound
// leaves the range open on that side.
func GetTransactions(db *gorm.DB, from, until types.Date) ([]Transaction, error) {
	q := db.Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if !from.IsZero() {
		q = q.Where("datetime(transactions.date) >= datetime(?)", from.Time())
	}

	if !until.IsZero() {
		q = q.Where("datetime(transactions.date) < datetime(?)", until.Next())
	}

	var transactions []Transaction
	err := q.Find(&transactions).Error
	return transactions, err
}
