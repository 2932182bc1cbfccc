package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/usecase/queries"
)

type HealthHandler struct {
	q queries.HealthQueries
}

func NewHealthHandler(q queries.HealthQueries) *HealthHandler {
	return &HealthHandler{q: q}
}

// @Summary Health check
// @Description Service status with catalog and cart counts
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	view := h.q.Check(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":    view.Status,
		"message":   "Server is running!",
		"products":  view.Products,
		"cartItems": view.CartItems,
	})
}
