package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/usecase/commands"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Checkout
// @Description Finalize the cart into an immutable receipt and reset the cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	receipt, err := h.cmds.Checkout(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortDomainErr(c, err, "Checkout failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReceipt(receipt))
}
