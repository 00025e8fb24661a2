package v1

import (
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// BalanceEditable are the fields of a manual balance change as they arrive
// from the form.
type BalanceEditable struct {
	Operation string `form:"operation_type" json:"operation" example:"add"` // One of "add", "subtract"
	Value     string `form:"change_value" json:"value" example:"250.50"`    // Change value, only the magnitude is used
}

// balanceChange is the validated form of BalanceEditable.
type balanceChange struct {
	Operation models.BalanceOperation
	Value     decimal.Decimal
}

var balanceOperations = []models.BalanceOperation{models.OperationAdd, models.OperationSubtract}

// parse validates the raw form fields.
func (editable BalanceEditable) parse() (balanceChange, error) {
	if editable.Operation == "" || editable.Value == "" {
		return balanceChange{}, errMissingFields
	}

	operation := models.BalanceOperation(editable.Operation)
	if !slices.Contains(balanceOperations, operation) {
		return balanceChange{}, errInvalidOperation
	}

	value, err := decimal.NewFromString(editable.Value)
	if err != nil {
		return balanceChange{}, errInvalidValue
	}

	return balanceChange{
		Operation: operation,
		Value:     value,
	}, nil
}

type BalanceResponse struct {
	Data    *Transaction `json:"data"`                                                                 // The ledger entry created by the balance change
	Message *string      `json:"message" example:"the balance has been increased by 250.50! New balance: 1250.50"` // The success notice, if the change was booked
	Error   *string      `json:"error" example:"insufficient balance to carry out this operation"`     // The error, if any occurred
}
