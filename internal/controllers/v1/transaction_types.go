package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/models"
)

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a ledger entry in API v1.
type Transaction struct {
	models.DefaultModel
	Kind             models.TransactionKind `json:"kind" example:"Purchase"`                          // What kind of event this entry records
	Date             time.Time              `json:"date" example:"2024-11-03T18:43:00.271152Z"`       // Time the event was booked
	Amount           decimal.Decimal        `json:"amount" example:"50.00"`                           // Amount moved, signed for balance adjustments
	ResultingBalance decimal.Decimal        `json:"resultingBalance" example:"950.00"`                // Account balance after this entry
	ProductName      string                 `json:"productName" example:"Widget"`                     // Product the entry refers to, empty for balance-only entries
	Cost             decimal.Decimal        `json:"cost" example:"50.00"`                             // Magnitude of money moved, zero for balance adjustments
	Links            TransactionLinks       `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel:     model.DefaultModel,
		Kind:             model.Kind,
		Date:             model.Date,
		Amount:           model.Amount,
		ResultingBalance: model.ResultingBalance,
		ProductName:      model.ProductName,
		Cost:             model.Cost,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

// newTransactions maps a list of ledger entries to their API representation.
func newTransactions(c *gin.Context, ms []models.Transaction) []Transaction {
	transactions := make([]Transaction, 0, len(ms))
	for _, m := range ms {
		transactions = append(transactions, newTransaction(c, m))
	}

	return transactions
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"there is no transaction matching your query"`   // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                         // The transaction
	Error *string      `json:"error" example:"there is no transaction matching your query"`  // The error, if any occurred
}
