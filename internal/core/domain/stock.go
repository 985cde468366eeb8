package domain

type StockLevel string

const (
	OutOfStock StockLevel = "out_of_stock"
	LowStock   StockLevel = "low_stock"
	InStock    StockLevel = "in_stock"
)

// StockLevelOf classifies a stock count. Counts up to lowThreshold are low.
func StockLevelOf(stock, lowThreshold int) StockLevel {
	switch {
	case stock <= 0:
		return OutOfStock
	case stock <= lowThreshold:
		return LowStock
	default:
		return InStock
	}
}

type DashboardStats struct {
	Products         int
	ActiveCategories int
	OutOfStock       int
	LowStock         int
	PendingApprovals int
}
