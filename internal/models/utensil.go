package models

import "time"

type Utensil struct {
	ID string `bson:"_id,omitempty" json:"_id"`

	Name            string  `bson:"name" json:"name"`
	Category        string  `bson:"category" json:"category"`
	Quantity        int     `bson:"quantity" json:"quantity"`
	MinStockLevel   *int    `bson:"minStockLevel" json:"minStockLevel"`
	MaxStockLevel   int     `bson:"maxStockLevel" json:"maxStockLevel"`
	Supplier        string  `bson:"supplier" json:"supplier"`
	PurchaseDate    string  `bson:"purchaseDate" json:"purchaseDate"`
	LastMaintenance string  `bson:"lastMaintenance" json:"lastMaintenance"`
	NextMaintenance string  `bson:"nextMaintenance" json:"nextMaintenance"`
	Cost            float64 `bson:"cost" json:"cost"`
	Location        string  `bson:"location" json:"location"`
	Status          string  `bson:"status" json:"status"`
	Notes           string  `bson:"notes" json:"notes"`
	ImageURL        *string `bson:"imageUrl" json:"imageUrl"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
