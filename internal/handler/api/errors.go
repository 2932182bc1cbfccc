package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/pkg/errs"
)

// abortDomainErr maps usecase sentinel errors onto HTTP statuses. Anything
// unmapped is an internal error; the inconsistent-cart case additionally
// logs, since by construction it should be unreachable.
func abortDomainErr(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, errs.ErrProductNotFound),
		errors.Is(err, errs.ErrCartItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msg, nil)
	case errors.Is(err, errs.ErrCartEmpty),
		errors.Is(err, errs.ErrInvalidQuantity),
		errors.Is(err, errs.ErrInvalidCustomerInfo):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	case errors.Is(err, errs.ErrCartInconsistent):
		slog.Error("cart line references missing product", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
