package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/httputil"
	"github.com/stockledger/backend/internal/models"
)

// RegisterBalanceRoutes registers the routes for balance changes with
// the RouterGroup that is passed.
func RegisterBalanceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBalance)
	r.POST("", CreateBalanceChange)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Balance
// @Success		204
// @Router			/v1/balance [options]
func OptionsBalance(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Change balance
// @Description	Manually adds to or subtracts from the account balance and appends a ledger entry
// @Tags			Balance
// @Accept			x-www-form-urlencoded,json
// @Produce		json
// @Success		201		{object}	BalanceResponse
// @Failure		400		{object}	BalanceResponse
// @Failure		500		{object}	BalanceResponse
// @Param			change	body		BalanceEditable	true	"Balance change"
// @Router			/v1/balance [post]
func CreateBalanceChange(c *gin.Context) {
	var editable BalanceEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BalanceResponse{Error: &e})
		return
	}

	request, err := editable.parse()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BalanceResponse{Error: &e})
		return
	}

	transaction, err := models.AdjustBalance(models.DB, request.Operation, request.Value)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{Error: &e})
		return
	}

	var message string
	if transaction.Kind == models.KindAdd {
		message = fmt.Sprintf("the balance has been increased by %s! New balance: %s", transaction.Amount.StringFixed(2), transaction.ResultingBalance.StringFixed(2))
	} else {
		message = fmt.Sprintf("the balance has been reduced by %s! New balance: %s", transaction.Amount.Abs().StringFixed(2), transaction.ResultingBalance.StringFixed(2))
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, BalanceResponse{Data: &data, Message: &message})
}
