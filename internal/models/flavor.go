package models

import "time"

type Flavor struct {
	ID string `bson:"_id,omitempty" json:"_id"`

	Name            string  `bson:"name" json:"name"`
	Category        string  `bson:"category" json:"category"`
	Quantity        float64 `bson:"quantity" json:"quantity"`
	Jars            int     `bson:"jars" json:"jars"`
	MinStockLevel   *int    `bson:"minStockLevel" json:"minStockLevel"`
	MaxStockLevel   int     `bson:"maxStockLevel" json:"maxStockLevel"`
	CostPerJar      float64 `bson:"costPerJar" json:"costPerJar"`
	Supplier        string  `bson:"supplier" json:"supplier"`
	ExpiryDate      string  `bson:"expiryDate" json:"expiryDate"`
	StorageLocation string  `bson:"storageLocation" json:"storageLocation"`
	Status          string  `bson:"status" json:"status"`
	Description     string  `bson:"description" json:"description"`
	Notes           string  `bson:"notes" json:"notes"`
	ImageURL        *string `bson:"imageUrl" json:"imageUrl"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
