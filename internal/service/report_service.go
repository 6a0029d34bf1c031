package service

import (
	"github.com/gauravjat135/galaxy-medical-store/internal/models"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService assembles the admin dashboard numbers.
type ReportService struct {
	reportRepo        repository.ReportRepository
	lowStockThreshold int
}

// NewReportService creates the report service.
func NewReportService(reportRepo repository.ReportRepository, lowStockThreshold int) *ReportService {
	if lowStockThreshold < 0 {
		lowStockThreshold = 0
	}
	return &ReportService{reportRepo: reportRepo, lowStockThreshold: lowStockThreshold}
}

// ReportOverview is the dashboard headline block.
type ReportOverview struct {
	OrdersTotal     int64        `json:"orders_total"`
	PendingOrders   int64        `json:"pending_orders"`
	FulfilledOrders int64        `json:"fulfilled_orders"`
	CancelledOrders int64        `json:"cancelled_orders"`
	GrossSales      models.Money `json:"gross_sales"`
	ProductsTotal   int64        `json:"products_total"`
	EmployeesTotal  int64        `json:"employees_total"`
}

// ReportTopProduct is one row of the best-sellers table.
type ReportTopProduct struct {
	ProductID   uint         `json:"product_id"`
	ProductName string       `json:"product_name"`
	Orders      int64        `json:"orders"`
	Quantity    int64        `json:"quantity"`
	Amount      models.Money `json:"amount"`
}

// Overview returns order, sales and headcount aggregates.
func (s *ReportService) Overview() (*ReportOverview, error) {
	row, err := s.reportRepo.GetOverview()
	if err != nil {
		return nil, err
	}
	return &ReportOverview{
		OrdersTotal:     row.OrdersTotal,
		PendingOrders:   row.PendingOrders,
		FulfilledOrders: row.FulfilledOrders,
		CancelledOrders: row.CancelledOrders,
		GrossSales:      models.NewMoneyFromDecimal(decimal.NewFromFloat(row.GrossSales)),
		ProductsTotal:   row.ProductsTotal,
		EmployeesTotal:  row.EmployeesTotal,
	}, nil
}

// LowStock lists active products at or below the alert threshold.
func (s *ReportService) LowStock() ([]models.Product, error) {
	return s.reportRepo.GetLowStock(s.lowStockThreshold)
}

// TopProducts ranks products by quantity sold.
func (s *ReportService) TopProducts(limit int) ([]ReportTopProduct, error) {
	rows, err := s.reportRepo.GetTopProducts(limit)
	if err != nil {
		return nil, err
	}
	ranking := make([]ReportTopProduct, 0, len(rows))
	for _, row := range rows {
		ranking = append(ranking, ReportTopProduct{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Orders:      row.Orders,
			Quantity:    row.Quantity,
			Amount:      models.NewMoneyFromDecimal(decimal.NewFromFloat(row.Amount)),
		})
	}
	return ranking, nil
}
