package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gauravjat135/galaxy-medical-store/internal/constants"
	"github.com/gauravjat135/galaxy-medical-store/internal/http/response"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"
	"github.com/gauravjat135/galaxy-medical-store/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminProductRequest creates or updates a catalog product.
type AdminProductRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" binding:"required"`
	Dosage       string `json:"dosage"`
	Manufacturer string `json:"manufacturer"`
	Price        string `json:"price" binding:"required"`
	Stock        *int   `json:"stock"`
	IsActive     *bool  `json:"is_active"`
}

// AdminSetStockRequest overwrites a product's stock count.
type AdminSetStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

func validProductCategory(category string) bool {
	switch category {
	case constants.ProductCategoryMedicine, constants.ProductCategoryEssentials:
		return true
	}
	return false
}

func parseProductPrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if price.IsNegative() {
		return decimal.Zero, errors.New("price must not be negative")
	}
	return price, nil
}

// AdminListProducts lists the catalog including inactive products.
func (h *Handler) AdminListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	products, total, err := h.ProductService.ListAdmin(repository.ProductListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// AdminGetProduct returns one product regardless of active state.
func (h *Handler) AdminGetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.ProductService.GetAdmin(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load product", err)
		return
	}
	response.Success(c, product)
}

// AdminCreateProduct adds a product to the catalog.
func (h *Handler) AdminCreateProduct(c *gin.Context) {
	var req AdminProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}
	if !validProductCategory(req.Category) {
		respondError(c, response.CodeBadRequest, "unknown product category", nil)
		return
	}
	price, err := parseProductPrice(req.Price)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid price", nil)
		return
	}
	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &models.Product{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Category:     req.Category,
		Dosage:       req.Dosage,
		Manufacturer: req.Manufacturer,
		Price:        models.NewMoneyFromDecimal(price),
		IsActive:     isActive,
	}
	if err := h.ProductService.Create(c.Request.Context(), product, stock); err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			respondError(c, response.CodeBadRequest, "stock must not be negative", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to create product", err)
		return
	}
	response.Success(c, product)
}

// AdminUpdateProduct saves descriptive fields. Stock is not touched here;
// it has its own endpoint on the ledger path.
func (h *Handler) AdminUpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	var req AdminProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}
	if !validProductCategory(req.Category) {
		respondError(c, response.CodeBadRequest, "unknown product category", nil)
		return
	}
	price, err := parseProductPrice(req.Price)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid price", nil)
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &models.Product{
		ID:           uint(id),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Category:     req.Category,
		Dosage:       req.Dosage,
		Manufacturer: req.Manufacturer,
		Price:        models.NewMoneyFromDecimal(price),
		IsActive:     isActive,
	}
	if err := h.ProductService.Update(c.Request.Context(), product); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update product", err)
		return
	}
	response.Success(c, product)
}

// AdminDeleteProduct removes a product from the catalog.
func (h *Handler) AdminDeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	if err := h.ProductService.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete product", err)
		return
	}
	response.Success(c, nil)
}

// AdminSetStock overwrites a product's stock count.
func (h *Handler) AdminSetStock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	var req AdminSetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Stock == nil {
		respondError(c, response.CodeBadRequest, "invalid request body", nil)
		return
	}

	if err := h.ProductService.Restock(c.Request.Context(), uint(id), *req.Stock); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			respondError(c, response.CodeBadRequest, "stock must not be negative", nil)
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to set stock", err)
		}
		return
	}
	response.Success(c, gin.H{"product_id": uint(id), "stock": *req.Stock})
}
