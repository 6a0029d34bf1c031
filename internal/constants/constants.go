package constants

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusCancelled = "cancelled"
)

// Product category constants
const (
	ProductCategoryMedicine   = "medicine"
	ProductCategoryEssentials = "essentials"
)

// Queue task type constants
const (
	TaskOrderAutoCancel   = "order:auto_cancel"
	TaskInventoryLowStock = "inventory:low_stock_alert"
)

// Queue name constants
const (
	QueueDefault = "default"
)

// Pagination limits
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CacheKeyProductList is the redis cache key for the public catalog listing.
const CacheKeyProductList = "catalog:products"
