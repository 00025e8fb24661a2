package v1_test

import (
	"net/http"

	v1 "github.com/stockledger/backend/internal/controllers/v1"
	"github.com/stockledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProductsOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/products", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestProductsGetEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/products", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProductListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.NotNil(suite.T(), response.Data)
	assert.Empty(suite.T(), response.Data)
}

// TestProductsGetOrder verifies that the inventory is served sorted by
// product name.
func (suite *TestSuiteStandard) TestProductsGetOrder() {
	for _, name := range []string{"Widget", "Anvil", "Gear"} {
		_ = createTestPurchase(suite.T(), v1.PurchaseEditable{ProductName: name, UnitPrice: "1.00", Quantity: "1"})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/products", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProductListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 3) {
		assert.Equal(suite.T(), "Anvil", response.Data[0].Name)
		assert.Equal(suite.T(), "Gear", response.Data[1].Name)
		assert.Equal(suite.T(), "Widget", response.Data[2].Name)
	}
}
