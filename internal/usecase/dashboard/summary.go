package dashboard

import (
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/stock"
	"github.com/BruksfildServices01/matcha-inventory/internal/store"
)

const (
	DegradedMessage = "Error fetching dashboard data"
	recentPerKind   = 5
)

type Activity struct {
	Action   string  `json:"action"`
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
}

type Summary struct {
	TotalItems     int                `json:"total_items"`
	LowStock       int                `json:"low_stock"`
	OutOfStock     int                `json:"out_of_stock"`
	TotalEmployees int64              `json:"total_employees"`
	CategoryStats  []store.FieldCount `json:"category_stats"`
	EmployeeStats  []store.FieldCount `json:"employee_stats"`
	StockStats     []store.FieldCount `json:"stock_stats"`
	RecentActivity []Activity         `json:"recent_activity"`

	UtensilStats    []store.FieldCount `json:"utensil_stats"`
	IngredientStats []store.FieldCount `json:"ingredient_stats"`
	FlavorStats     []store.FieldCount `json:"flavor_stats"`
}

// Empty is the zeroed summary returned when aggregation fails.
func Empty() Summary {
	return Summary{
		CategoryStats:   []store.FieldCount{},
		EmployeeStats:   []store.FieldCount{},
		StockStats:      []store.FieldCount{},
		RecentActivity:  []Activity{},
		UtensilStats:    []store.FieldCount{},
		IngredientStats: []store.FieldCount{},
		FlavorStats:     []store.FieldCount{},
	}
}

func stockStats(t stock.Tally) []store.FieldCount {
	return []store.FieldCount{
		{Value: stock.InStock.Label(), Count: int64(t.In())},
		{Value: stock.LowStock.Label(), Count: int64(t.Low)},
		{Value: stock.OutOfStock.Label(), Count: int64(t.Out)},
	}
}
