package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/stockledger/backend/internal/controllers/v1"
	"github.com/stockledger/backend/internal/models"
	"github.com/stockledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestHistoryOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/history", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))
}

// TestHistoryBlank verifies the blank state of the history view: reading it
// without submitting a filter is not the same as a filter that matched
// nothing.
func (suite *TestSuiteStandard) TestHistoryBlank() {
	_ = createTestPurchase(suite.T(), v1.PurchaseEditable{ProductName: "Widget", UnitPrice: "10.00", Quantity: "5"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/history", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.HistoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.False(suite.T(), response.Submitted)
	assert.Empty(suite.T(), response.Data)
}

// TestHistoryQuery verifies filtering of the ledger by an inclusive day
// range, with either bound optional.
func (suite *TestSuiteStandard) TestHistoryQuery() {
	// Book ledger entries on three different days
	for _, date := range []time.Time{
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC),
	} {
		transaction := models.Transaction{
			Kind:             models.KindAdd,
			Date:             date,
			Amount:           decimal.NewFromInt(10),
			ResultingBalance: decimal.NewFromInt(1010),
		}
		require.Nil(suite.T(), models.DB.Create(&transaction).Error)
	}

	tests := []struct {
		name   string
		filter v1.HistoryEditable
		length int
	}{
		{"Unbounded", v1.HistoryEditable{}, 3},
		{"From only", v1.HistoryEditable{StartDate: "15-03-2024"}, 2},
		{"Until only", v1.HistoryEditable{EndDate: "15-03-2024"}, 2},
		{"Both bounds", v1.HistoryEditable{StartDate: "02-03-2024", EndDate: "30-03-2024"}, 1},
		{"Single day", v1.HistoryEditable{StartDate: "15-03-2024", EndDate: "15-03-2024"}, 1},
		{"Before all entries", v1.HistoryEditable{EndDate: "29-02-2024"}, 0},
		{"After all entries", v1.HistoryEditable{StartDate: "01-04-2024"}, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/history", tt.filter)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.HistoryResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.True(t, response.Submitted)
			assert.Len(t, response.Data, tt.length)
		})
	}
}

// TestHistoryQueryForm verifies the form submission path used by the HTML
// frontend.
func (suite *TestSuiteStandard) TestHistoryQueryForm() {
	_ = createTestPurchase(suite.T(), v1.PurchaseEditable{ProductName: "Widget", UnitPrice: "10.00", Quantity: "5"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/history", test.Form(map[string]string{
		"start_date": "01-01-2020",
	}))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.HistoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Submitted)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestHistoryQueryInvalid() {
	tests := []struct {
		name   string
		filter v1.HistoryEditable
	}{
		{"Unparsable start date", v1.HistoryEditable{StartDate: "yesterday"}},
		{"Unparsable end date", v1.HistoryEditable{EndDate: "2024-03-15"}},
		{"Out of range day", v1.HistoryEditable{StartDate: "32-01-2024"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/history", tt.filter)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.HistoryResponse
			test.DecodeResponse(t, &recorder, &response)

			if assert.NotNil(t, response.Error) {
				assert.Equal(t, "please enter valid date values (dd-mm-yyyy)", *response.Error)
			}
		})
	}
}
