package models

import "time"

type Supplier struct {
	ID string `bson:"_id,omitempty" json:"_id"`

	Name          string  `bson:"name" json:"name"`
	Email         string  `bson:"email" json:"email"`
	Phone         string  `bson:"phone" json:"phone"`
	Contract      string  `bson:"contract" json:"contract"`
	Place         string  `bson:"place" json:"place"`
	Category      string  `bson:"category" json:"category"`
	ContactPerson string  `bson:"contactPerson" json:"contactPerson"`
	Website       string  `bson:"website" json:"website"`
	Notes         string  `bson:"notes" json:"notes"`
	DocumentURL   *string `bson:"documentUrl" json:"documentUrl"`
	Status        string  `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
