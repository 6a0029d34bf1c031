package repository

// ProductListFilter narrows catalog listings.
type ProductListFilter struct {
	Category   string
	Search     string
	OnlyActive bool
	Page       int
	PageSize   int
}

// OrderListFilter narrows order listings. UserID 0 means no owner filter
// (admin listings).
type OrderListFilter struct {
	UserID   uint
	Status   string
	Page     int
	PageSize int
}
