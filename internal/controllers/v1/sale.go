package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/httputil"
	"github.com/stockledger/backend/internal/models"
)

// RegisterSaleRoutes registers the routes for sales with
// the RouterGroup that is passed.
func RegisterSaleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSaleList)
	r.POST("", CreateSale)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sales
// @Success		204
// @Router			/v1/sales [options]
func OptionsSaleList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create sale
// @Description	Books a sale: removes the stock, credits the account and appends a Sale ledger entry
// @Tags			Sales
// @Accept			x-www-form-urlencoded,json
// @Produce		json
// @Success		201		{object}	SaleResponse
// @Failure		400		{object}	SaleResponse
// @Failure		404		{object}	SaleResponse
// @Failure		500		{object}	SaleResponse
// @Param			sale	body		SaleEditable	true	"Sale"
// @Router			/v1/sales [post]
func CreateSale(c *gin.Context) {
	var editable SaleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SaleResponse{Error: &e})
		return
	}

	request, err := editable.parse()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SaleResponse{Error: &e})
		return
	}

	transaction, err := models.Sell(models.DB, request.ProductName, request.Quantity)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SaleResponse{Error: &e})
		return
	}

	data := newTransaction(c, transaction)
	message := fmt.Sprintf("successful sale! Product: %s, total: %s", transaction.ProductName, transaction.Cost.StringFixed(2))
	c.JSON(http.StatusCreated, SaleResponse{Data: &data, Message: &message})
}
