package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/httputil"
	"github.com/stockledger/backend/internal/models"
)

// RegisterAccountRoutes registers the routes for the account with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAccount)
	r.GET("", GetAccount)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Account
// @Success		204
// @Router			/v1/account [options]
func OptionsAccount(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get account
// @Description	Returns the single cash account with its current balance
// @Tags			Account
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Router			/v1/account [get]
func GetAccount(c *gin.Context) {
	account, err := models.GetAccount(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	data := newAccount(account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}
