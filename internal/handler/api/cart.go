package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary View cart
// @Description Resolved cart lines with per-line and grand totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 500 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	view, err := h.q.View(c.Request.Context())
	if err != nil {
		abortDomainErr(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add to cart
// @Description Add a product to the cart; quantities merge into an existing line
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Add item request"
// @Success 200 {object} resdto.AddItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AddItem(c.Request.Context(), req.ProductID, req.QuantityOrDefault())
	if err != nil {
		abortDomainErr(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, resdto.AddItemResponse{
		Message:    "Item added to cart",
		LineItemID: result.LineItemID.String(),
		Quantity:   result.Quantity,
	})
}

// @Summary Set line quantity
// @Description Replace a cart line's quantity; zero or less removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart line item ID"
// @Param request body reqdto.SetQuantityRequest true "Set quantity request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/{id} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.SetQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	removed, err := h.cmds.SetQuantity(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		abortDomainErr(c, err, "Cart item not found")
		return
	}
	if removed {
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
}

// @Summary Remove from cart
// @Description Delete one cart line by ID
// @Tags cart
// @Produce json
// @Param id path string true "Cart line item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/{id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), id); err != nil {
		abortDomainErr(c, err, "Cart item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

// @Summary Clear cart
// @Description Remove all cart lines unconditionally
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.ClearCartResponse
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	removed, _ := h.cmds.Clear(c.Request.Context())
	c.JSON(http.StatusOK, resdto.ClearCartResponse{
		Message:      "Cart cleared successfully",
		ItemsRemoved: removed,
	})
}
