package public

import (
	"errors"

	"github.com/gauravjat135/galaxy-medical-store/internal/http/response"
	"github.com/gauravjat135/galaxy-medical-store/internal/service"

	"github.com/gin-gonic/gin"
)

// Checkout turns the user's cart into an order.
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	order, err := h.CheckoutService.Checkout(c.Request.Context(), uid)
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			respondError(c, response.CodeBadRequest, "cart is empty", nil)
		case errors.As(err, &stockErr):
			response.ErrorWithData(c, response.CodeBadRequest, "insufficient stock", gin.H{
				"product_id": stockErr.ProductID,
			})
		case errors.Is(err, service.ErrInvalidQuantity):
			respondError(c, response.CodeBadRequest, "cart contains an invalid quantity", nil)
		case errors.Is(err, service.ErrCommitFailed):
			respondError(c, response.CodeInternal, "checkout could not be completed, please retry", err)
		default:
			respondError(c, response.CodeInternal, "checkout failed", err)
		}
		return
	}
	response.Success(c, order)
}
