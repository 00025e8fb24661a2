package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum BalanceOperation
type BalanceOperation string

const (
	OperationAdd      BalanceOperation = "add"
	OperationSubtract BalanceOperation = "subtract"
)

// Purchase books a stock purchase: it debits the account by the total cost,
// adds the lot to the matching product (creating it if it does not exist)
// and appends a Purchase ledger entry. All writes commit atomically.
//
// The unit price must be rounded to two fraction digits by the caller,
// the total cost is rounded to two fraction digits here.
func Purchase(db *gorm.DB, name string, unitPrice decimal.Decimal, quantity int64) (Transaction, error) {
	totalCost := unitPrice.Mul(decimal.NewFromInt(quantity)).Round(2)

	var transaction Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		account, err := GetAccount(tx)
		if err != nil {
			return err
		}

		if account.Balance.LessThan(totalCost) {
			return ErrInsufficientFunds
		}

		account.Balance = account.Balance.Sub(totalCost)
		err = tx.Save(&account).Error
		if err != nil {
			return err
		}

		var product Product
		err = tx.Where(&Product{Name: name}).First(&product).Error
		if err != nil && !errors.Is(err, ErrResourceNotFound) {
			return err
		}

		if errors.Is(err, ErrResourceNotFound) {
			product = Product{Name: name, UnitPrice: unitPrice, StockQuantity: quantity}
			err = tx.Create(&product).Error
		} else {
			product.AddStock(unitPrice, quantity)
			err = tx.Save(&product).Error
		}
		if err != nil {
			return err
		}

		transaction = Transaction{
			Kind:             KindPurchase,
			Amount:           totalCost,
			ResultingBalance: account.Balance,
			ProductName:      product.Name,
			Cost:             totalCost,
		}
		return tx.Create(&transaction).Error
	})

	return transaction, err
}

// Sell books a sale: it removes the quantity from the product's stock,
// credits the account with the sale amount and appends a Sale ledger entry.
// All writes commit atomically.
//
// The sale amount is unit price times quantity without further rounding.
// The unit price carries at most two fraction digits, so the product with
// an integer quantity keeps that scale.
func Sell(db *gorm.DB, name string, quantity int64) (Transaction, error) {
	var transaction Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		var product Product
		err := tx.Where(&Product{Name: name}).First(&product).Error
		if err != nil {
			return err
		}

		if product.StockQuantity < quantity {
			return ErrInsufficientStock
		}

		product.StockQuantity -= quantity
		err = tx.Save(&product).Error
		if err != nil {
			return err
		}

		saleAmount := product.UnitPrice.Mul(decimal.NewFromInt(quantity))

		account, err := GetAccount(tx)
		if err != nil {
			return err
		}

		account.Balance = account.Balance.Add(saleAmount)
		err = tx.Save(&account).Error
		if err != nil {
			return err
		}

		transaction = Transaction{
			Kind:             KindSale,
			Amount:           saleAmount,
			ResultingBalance: account.Balance,
			ProductName:      product.Name,
			Cost:             saleAmount,
		}
		return tx.Create(&transaction).Error
	})

	return transaction, err
}

// AdjustBalance books a manual balance change. Only the magnitude of the
// value is used. An addition always applies, a subtraction only when the
// balance covers the value.
//
// A rejected subtraction writes nothing, not even a ledger entry.
func AdjustBalance(db *gorm.DB, operation BalanceOperation, value decimal.Decimal) (Transaction, error) {
	value = value.Abs()

	var transaction Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		account, err := GetAccount(tx)
		if err != nil {
			return err
		}

		var kind TransactionKind
		var amount decimal.Decimal

		switch operation {
		case OperationAdd:
			kind = KindAdd
			amount = value
			account.Balance = account.Balance.Add(value)
		case OperationSubtract:
			if account.Balance.LessThan(value) {
				return ErrInsufficientBalance
			}

			kind = KindSubtract
			amount = value.Neg()
			account.Balance = account.Balance.Sub(value)
		}

		err = tx.Save(&account).Error
		if err != nil {
			return err
		}

		transaction = Transaction{
			Kind:             kind,
			Amount:           amount,
			ResultingBalance: account.Balance,
			ProductName:      "",
			Cost:             decimal.Zero,
		}
		return tx.Create(&transaction).Error
	})

	return transaction, err
}
