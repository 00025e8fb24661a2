package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/httputil"
	"github.com/stockledger/backend/internal/models"
)

// RegisterPurchaseRoutes registers the routes for purchases with
// the RouterGroup that is passed.
func RegisterPurchaseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPurchaseList)
	r.POST("", CreatePurchase)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Router			/v1/purchases [options]
func OptionsPurchaseList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create purchase
// @Description	Books a stock purchase: debits the account, adds the stock and appends a Purchase ledger entry
// @Tags			Purchases
// @Accept			x-www-form-urlencoded,json
// @Produce		json
// @Success		201			{object}	PurchaseResponse
// @Failure		400			{object}	PurchaseResponse
// @Failure		500			{object}	PurchaseResponse
// @Param			purchase	body		PurchaseEditable	true	"Purchase"
// @Router			/v1/purchases [post]
func CreatePurchase(c *gin.Context) {
	var editable PurchaseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, PurchaseResponse{Error: &e})
		return
	}

	request, err := editable.parse()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, PurchaseResponse{Error: &e})
		return
	}

	transaction, err := models.Purchase(models.DB, request.ProductName, request.UnitPrice, request.Quantity)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseResponse{Error: &e})
		return
	}

	data := newTransaction(c, transaction)
	message := fmt.Sprintf("successful purchase! Product: %s, total: %s", transaction.ProductName, transaction.Cost.StringFixed(2))
	c.JSON(http.StatusCreated, PurchaseResponse{Data: &data, Message: &message})
}
