package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gauravjat135/galaxy-medical-store/internal/http/response"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"
	"github.com/gauravjat135/galaxy-medical-store/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminListOrders lists orders across all users.
func (h *Handler) AdminListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var userID uint
	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			userID = uint(parsed)
		}
	}

	orders, total, err := h.OrderService.ListAdmin(repository.OrderListFilter{
		UserID:   userID,
		Status:   strings.TrimSpace(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}

	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// AdminGetOrder returns any order with its items.
func (h *Handler) AdminGetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.GetAdmin(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load order", err)
		return
	}
	response.Success(c, order)
}

// AdminFulfillOrder marks a pending order fulfilled.
func (h *Handler) AdminFulfillOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.Fulfill(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrOrderStateConflict):
			respondError(c, response.CodeBadRequest, "order is not pending", nil)
		default:
			respondError(c, response.CodeInternal, "failed to fulfill order", err)
		}
		return
	}
	response.Success(c, order)
}

// AdminCancelOrder cancels a pending order and returns its stock.
func (h *Handler) AdminCancelOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.Cancel(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrOrderStateConflict):
			respondError(c, response.CodeBadRequest, "order is not pending", nil)
		default:
			respondError(c, response.CodeInternal, "failed to cancel order", err)
		}
		return
	}
	response.Success(c, order)
}
