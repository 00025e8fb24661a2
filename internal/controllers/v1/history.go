package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/httputil"
	"github.com/stockledger/backend/internal/models"
)

// RegisterHistoryRoutes registers the routes for the transaction history
// with the RouterGroup that is passed.
func RegisterHistoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHistory)
	r.GET("", GetHistory)
	r.POST("", QueryHistory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			History
// @Success		204
// @Router			/v1/history [options]
func OptionsHistory(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Blank history view
// @Description	Returns the blank state of the history view: no filter submitted, no rows
// @Tags			History
// @Produce		json
// @Success		200	{object}	HistoryResponse
// @Router			/v1/history [get]
func GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, HistoryResponse{
		Submitted: false,
		Data:      []Transaction{},
	})
}

// @Summary		Query history
// @Description	Returns ledger entries in the inclusive day range between the submitted bounds, date descending
// @Tags			History
// @Accept			x-www-form-urlencoded,json
// @Produce		json
// @Success		200		{object}	HistoryResponse
// @Failure		400		{object}	HistoryResponse
// @Failure		500		{object}	HistoryResponse
// @Param			filter	body		HistoryEditable	true	"Date range"
// @Router			/v1/history [post]
func QueryHistory(c *gin.Context) {
	var editable HistoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, HistoryResponse{Error: &e, Data: []Transaction{}})
		return
	}

	query, err := editable.parse()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, HistoryResponse{Error: &e, Data: []Transaction{}})
		return
	}

	transactions, err := models.GetTransactions(models.DB, query.From, query.Until)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryResponse{Error: &e, Data: []Transaction{}})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Submitted: true,
		Data:      newTransactions(c, transactions),
	})
}
