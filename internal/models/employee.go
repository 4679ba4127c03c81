package models

import "time"

type Employee struct {
	ID string `bson:"_id,omitempty" json:"_id"`

	Name             string  `bson:"name" json:"name"`
	Email            string  `bson:"email" json:"email"`
	Phone            string  `bson:"phone" json:"phone"`
	Position         string  `bson:"position" json:"position"`
	Shift            string  `bson:"shift" json:"shift"`
	Salary           float64 `bson:"salary" json:"salary"`
	HireDate         string  `bson:"hireDate" json:"hireDate"`
	PerformanceNotes string  `bson:"performanceNotes" json:"performanceNotes"`
	PhotoURL         *string `bson:"photoUrl" json:"photoUrl"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
