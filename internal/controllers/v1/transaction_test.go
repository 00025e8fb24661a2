package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/stockledger/backend/internal/controllers/v1"
	"github.com/stockledger/backend/internal/models"
	"github.com/stockledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestTransactionsOptionsDetail() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestPurchase(suite.T(), v1.PurchaseEditable{ProductName: "Widget", UnitPrice: "10.00", Quantity: "5"}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET", r.Header().Get("allow"))
			}
		})
	}
}

// TestTransactionsGet verifies that the full ledger is served ordered by
// date descending.
func (suite *TestSuiteStandard) TestTransactionsGet() {
	_ = createTestPurchase(suite.T(), v1.PurchaseEditable{ProductName: "Widget", UnitPrice: "10.00", Quantity: "5"})
	_ = createTestSale(suite.T(), v1.SaleEditable{ProductName: "Widget", Quantity: "2"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 2) {
		return
	}

	kinds := []models.TransactionKind{response.Data[0].Kind, response.Data[1].Kind}
	assert.Contains(suite.T(), kinds, models.KindPurchase)
	assert.Contains(suite.T(), kinds, models.KindSale)

	for _, transaction := range response.Data {
		assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), transaction.Links.Self)
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	created := createTestPurchase(suite.T(), v1.PurchaseEditable{ProductName: "Widget", UnitPrice: "10.00", Quantity: "5"})

	recorder := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.NotNil(suite.T(), response.Data) {
		assert.Equal(suite.T(), created.Data.ID, response.Data.ID)
		assert.Equal(suite.T(), models.KindPurchase, response.Data.Kind)
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingleInvalid() {
	tests := []struct {
		name   string
		id     string
		status int
		err    string
	}{
		{"Invalid UUID", "NotParseableAsUUID", http.StatusBadRequest, "the specified resource ID is not a valid UUID"},
		{"Does not exist", uuid.New().String(), http.StatusNotFound, "there is no transaction matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &recorder, &response)

			if assert.NotNil(t, response.Error) {
				assert.Equal(t, tt.err, *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.NotNil(suite.T(), response.Error) {
		assert.Equal(suite.T(), models.ErrGeneral.Error(), *response.Error)
	}
}
