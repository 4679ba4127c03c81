package models

import "time"

type Ingredient struct {
	ID string `bson:"_id,omitempty" json:"_id"`

	Name            string   `bson:"name" json:"name"`
	Category        string   `bson:"category" json:"category"`
	Quantity        float64  `bson:"quantity" json:"quantity"`
	Unit            string   `bson:"unit" json:"unit"`
	MinStockLevel   *float64 `bson:"minStockLevel" json:"minStockLevel"`
	MaxStockLevel   float64  `bson:"maxStockLevel" json:"maxStockLevel"`
	CostPerUnit     float64  `bson:"costPerUnit" json:"costPerUnit"`
	Supplier        string   `bson:"supplier" json:"supplier"`
	ExpiryDate      string   `bson:"expiryDate" json:"expiryDate"`
	StorageLocation string   `bson:"storageLocation" json:"storageLocation"`
	Status          string   `bson:"status" json:"status"`
	Notes           string   `bson:"notes" json:"notes"`
	ImageURL        *string  `bson:"imageUrl" json:"imageUrl"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
