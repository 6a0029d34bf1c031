package repository

import (
	"github.com/gauravjat135/galaxy-medical-store/internal/constants"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"

	"gorm.io/gorm"
)

// ReportRepository exposes read-only aggregates for the admin dashboard.
// It carries no business rules; consistency comes from the transactional
// core writing the underlying rows.
type ReportRepository interface {
	GetOverview() (ReportOverviewRow, error)
	GetLowStock(threshold int) ([]models.Product, error)
	GetTopProducts(limit int) ([]ReportProductRankingRow, error)
}

// ReportOverviewRow is the raw overview aggregate.
type ReportOverviewRow struct {
	OrdersTotal     int64
	PendingOrders   int64
	FulfilledOrders int64
	CancelledOrders int64
	GrossSales      float64
	ProductsTotal   int64
	EmployeesTotal  int64
}

// ReportProductRankingRow ranks products by ordered quantity.
type ReportProductRankingRow struct {
	ProductID   uint
	ProductName string
	Orders      int64
	Quantity    int64
	Amount      float64
}

// GormReportRepository is the GORM implementation.
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates the report repository.
func NewReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// GetOverview aggregates order, sales, product and staff counts.
func (r *GormReportRepository) GetOverview() (ReportOverviewRow, error) {
	var row ReportOverviewRow

	type orderAgg struct {
		Status string
		Count  int64
		Sum    float64
	}
	var orderRows []orderAgg
	if err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS sum").
		Group("status").
		Scan(&orderRows).Error; err != nil {
		return row, err
	}
	for _, agg := range orderRows {
		row.OrdersTotal += agg.Count
		row.GrossSales += agg.Sum
		switch agg.Status {
		case constants.OrderStatusPending:
			row.PendingOrders = agg.Count
		case constants.OrderStatusFulfilled:
			row.FulfilledOrders = agg.Count
		case constants.OrderStatusCancelled:
			row.CancelledOrders = agg.Count
		}
	}

	if err := r.db.Model(&models.Product{}).Count(&row.ProductsTotal).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Employee{}).Count(&row.EmployeesTotal).Error; err != nil {
		return row, err
	}
	return row, nil
}

// GetLowStock returns active products at or below the threshold.
func (r *GormReportRepository) GetLowStock(threshold int) ([]models.Product, error) {
	if threshold < 0 {
		threshold = 0
	}
	var products []models.Product
	if err := r.db.Where("is_active = ? AND stock_quantity <= ?", true, threshold).
		Order("stock_quantity asc, id asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetTopProducts ranks products by total ordered quantity.
func (r *GormReportRepository) GetTopProducts(limit int) ([]ReportProductRankingRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []ReportProductRankingRow
	err := r.db.Model(&models.OrderItem{}).
		Select("order_items.product_id AS product_id, order_items.product_name AS product_name, COUNT(DISTINCT order_items.order_id) AS orders, SUM(order_items.quantity) AS quantity, COALESCE(SUM(order_items.price * order_items.quantity), 0) AS amount").
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.status != ?", constants.OrderStatusCancelled).
		Where("order_items.deleted_at IS NULL").
		Group("order_items.product_id, order_items.product_name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
