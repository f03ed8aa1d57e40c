package models

import "time"

// StockStatus defines the type for stock statuses
type StockStatus string

const (
	StockStatusInStock    StockStatus = "In Stock"
	StockStatusLowStock   StockStatus = "Low Stock"
	StockStatusOutOfStock StockStatus = "Out of Stock"
)

// IsValidStockStatus checks if the provided status string is a valid StockStatus.
func IsValidStockStatus(status string) bool {
	switch StockStatus(status) {
	case StockStatusInStock, StockStatusLowStock, StockStatusOutOfStock:
		return true
	default:
		return false
	}
}

// StockItem is one inventory line at one point in time.
type StockItem struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	CurrentStock  float64     `json:"currentStock"`
	ReorderLevel  float64     `json:"reorderLevel"`
	UsageRate     float64     `json:"usageRate"` // Units per day
	LowStockAlert *string     `json:"lowStockAlert,omitempty"`
	LastUpdated   *time.Time  `json:"lastUpdated"`
	Status        StockStatus `json:"status"`
	Notes         *string     `json:"notes,omitempty"`
}

// StockFilter narrows a list of current stock items.
type StockFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
}

// StockSummary describes overall inventory health.
type StockSummary struct {
	TotalItems       int         `json:"totalItems"`
	InStockCount     int         `json:"inStockCount"`
	LowStockCount    int         `json:"lowStockCount"`
	OutOfStockCount  int         `json:"outOfStockCount"`
	HealthPercentage float64     `json:"healthPercentage"`
	CriticalItems    []StockItem `json:"criticalItems"`
}
