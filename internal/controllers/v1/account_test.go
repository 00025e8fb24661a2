package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/stockledger/backend/internal/controllers/v1"
	"github.com/stockledger/backend/internal/models"
	"github.com/stockledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/account", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}

// TestAccountGet verifies that a fresh database serves the account with the
// opening balance.
func (suite *TestSuiteStandard) TestAccountGet() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/account", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.NotNil(suite.T(), response.Data) {
		assert.True(suite.T(), response.Data.Balance.Equal(models.OpeningBalance), "Balance is %s, expected %s", response.Data.Balance, models.OpeningBalance)
	}
}

// TestAccountFollowsLedger verifies that the account balance reflects a mix
// of bookings.
func (suite *TestSuiteStandard) TestAccountFollowsLedger() {
	_ = createTestPurchase(suite.T(), v1.PurchaseEditable{ProductName: "Widget", UnitPrice: "10.00", Quantity: "5"})
	_ = createTestSale(suite.T(), v1.SaleEditable{ProductName: "Widget", Quantity: "2"})
	_ = createTestBalanceChange(suite.T(), v1.BalanceEditable{Operation: "subtract", Value: "70"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/account", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// 1000 - 50 + 20 - 70
	if assert.NotNil(suite.T(), response.Data) {
		assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(900)), "Balance is %s, expected 900", response.Data.Balance)
	}
}

func (suite *TestSuiteStandard) TestAccountDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/account", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.NotNil(suite.T(), response.Error) {
		assert.Equal(suite.T(), models.ErrGeneral.Error(), *response.Error)
	}
}
