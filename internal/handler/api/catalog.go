package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/usecase/queries"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List products
// @Description List all catalog products in display order
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /api/products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	products := h.q.List(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromProductList(products))
}

// @Summary Get product
// @Description Get a single catalog product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	p, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortDomainErr(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(p))
}
