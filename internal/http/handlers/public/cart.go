package public

import (
	"errors"
	"strconv"

	"github.com/gauravjat135/galaxy-medical-store/internal/http/response"
	"github.com/gauravjat135/galaxy-medical-store/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartLineRequest adds a product to the cart.
type AddCartLineRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// SetCartQuantityRequest overwrites a line's quantity.
type SetCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the user's cart lines.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListLines(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load cart", err)
		return
	}
	response.Success(c, items)
}

// AddCartLine adds a product to the cart, merging into an existing line.
func (h *Handler) AddCartLine(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}

	item, err := h.CartService.AddLine(uid, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			respondError(c, response.CodeBadRequest, "quantity must be positive", nil)
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		case errors.Is(err, service.ErrProductInactive):
			respondError(c, response.CodeBadRequest, "product is not available", nil)
		default:
			respondError(c, response.CodeInternal, "failed to add to cart", err)
		}
		return
	}
	response.Success(c, item)
}

// SetCartQuantity overwrites a line's quantity; zero or less removes the line.
func (h *Handler) SetCartQuantity(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	lineID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || lineID == 0 {
		respondError(c, response.CodeBadRequest, "invalid cart line id", nil)
		return
	}

	var req SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}

	if err := h.CartService.SetQuantity(uid, uint(lineID), *req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrCartLineNotFound):
			respondError(c, response.CodeNotFound, "cart line not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update cart", err)
		}
		return
	}
	response.Success(c, nil)
}

// RemoveCartLine deletes a line; removing an absent line succeeds.
func (h *Handler) RemoveCartLine(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	lineID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || lineID == 0 {
		respondError(c, response.CodeBadRequest, "invalid cart line id", nil)
		return
	}

	if err := h.CartService.RemoveLine(uid, uint(lineID)); err != nil {
		respondError(c, response.CodeInternal, "failed to remove cart line", err)
		return
	}
	response.Success(c, nil)
}

// ClearCart empties the user's cart.
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(uid); err != nil {
		respondError(c, response.CodeInternal, "failed to clear cart", err)
		return
	}
	response.Success(c, nil)
}
