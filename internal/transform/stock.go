package transform

import (
	"strings"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/pkg/utils"
)

// ClassifyStock derives the stock status from the current quantity and reorder level.
func ClassifyStock(current, reorderLevel float64) models.StockStatus {
	switch {
	case current <= 0:
		return models.StockStatusOutOfStock
	case current <= reorderLevel:
		return models.StockStatusLowStock
	default:
		return models.StockStatusInStock
	}
}

// SelectCurrentSnapshot keeps the most recently updated item for each name.
// On equal timestamps the item seen first is kept; an item without a timestamp
// never replaces one that has one. Names keep the order they were first seen in.
func SelectCurrentSnapshot(items []models.StockItem) []models.StockItem {
	index := make(map[string]int, len(items))
	out := []models.StockItem{}
	for _, item := range items {
		i, seen := index[item.Name]
		if !seen {
			index[item.Name] = len(out)
			out = append(out, item)
			continue
		}
		if newerThan(item, out[i]) {
			out[i] = item
		}
	}
	return out
}

func newerThan(candidate, current models.StockItem) bool {
	if candidate.LastUpdated == nil {
		return false
	}
	if current.LastUpdated == nil {
		return true
	}
	return candidate.LastUpdated.After(*current.LastUpdated)
}

// SelectLowStock keeps items that are low or out of stock.
func SelectLowStock(items []models.StockItem) []models.StockItem {
	out := []models.StockItem{}
	for _, item := range items {
		if item.Status == models.StockStatusLowStock || item.Status == models.StockStatusOutOfStock {
			out = append(out, item)
		}
	}
	return out
}

// GetLowStockItems returns the current low or out of stock items.
func GetLowStockItems(items []models.StockItem) []models.StockItem {
	return SelectLowStock(SelectCurrentSnapshot(items))
}

// SummarizeStock reports status counts and overall health for a current
// snapshot. Critical items are those out of stock, or low with no more than
// criticalThreshold units left.
func SummarizeStock(items []models.StockItem, criticalThreshold float64) models.StockSummary {
	summary := models.StockSummary{
		TotalItems:    len(items),
		CriticalItems: []models.StockItem{},
	}
	for _, item := range items {
		switch item.Status {
		case models.StockStatusInStock:
			summary.InStockCount++
		case models.StockStatusLowStock:
			summary.LowStockCount++
			if item.CurrentStock <= criticalThreshold {
				summary.CriticalItems = append(summary.CriticalItems, item)
			}
		case models.StockStatusOutOfStock:
			summary.OutOfStockCount++
			summary.CriticalItems = append(summary.CriticalItems, item)
		}
	}
	if summary.TotalItems > 0 {
		pct := float64(summary.InStockCount) / float64(summary.TotalItems) * 100
		summary.HealthPercentage = roundHalfUp(pct*10) / 10
	}
	return summary
}

// FilterStock applies a free-text search over name and category, plus exact
// category and status matches. Empty or "all" criteria match everything.
func FilterStock(items []models.StockItem, filter models.StockFilter) []models.StockItem {
	search := strings.TrimSpace(filter.Search)
	out := []models.StockItem{}
	for _, item := range items {
		if search != "" &&
			!utils.ContainsFold(item.Name, search) &&
			!utils.ContainsFold(item.Category, search) {
			continue
		}
		if !matchesCriterion(filter.Category, item.Category) {
			continue
		}
		if !matchesCriterion(filter.Status, string(item.Status)) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesCriterion(want, have string) bool {
	if want == "" || strings.EqualFold(want, "all") {
		return true
	}
	return want == have
}
