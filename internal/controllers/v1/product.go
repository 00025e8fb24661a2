package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/httputil"
	"github.com/stockledger/backend/internal/models"
)

// RegisterProductRoutes registers the routes for products with
// the RouterGroup that is passed.
func RegisterProductRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProductList)
	r.GET("", GetProducts)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Products
// @Success		204
// @Router			/v1/products [options]
func OptionsProductList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List products
// @Description	Returns the full inventory, ordered by name
// @Tags			Products
// @Produce		json
// @Success		200	{object}	ProductListResponse
// @Failure		500	{object}	ProductListResponse
// @Router			/v1/products [get]
func GetProducts(c *gin.Context) {
	products, err := models.GetProducts(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductListResponse{Error: &e})
		return
	}

	data := make([]Product, 0, len(products))
	for _, product := range products {
		data = append(data, newProduct(product))
	}

	c.JSON(http.StatusOK, ProductListResponse{Data: data})
}
