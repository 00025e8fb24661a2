package v1

import (
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/models"
)

// Account is the representation of the cash account in API v1.
type Account struct {
	models.DefaultModel
	Balance decimal.Decimal `json:"balance" example:"950.00"` // Current cash balance
}

// newAccount returns the API v1 representation of the resource
func newAccount(model models.Account) Account {
	return Account{
		DefaultModel: model.DefaultModel,
		Balance:      model.Balance,
	}
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                      // The account
	Error *string  `json:"error" example:"there is no account matching your query"`   // The error, if any occurred
}
