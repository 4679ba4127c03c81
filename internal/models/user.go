package models

import "time"

type User struct {
	ID string `bson:"_id,omitempty" json:"_id"`

	Username     string `bson:"username" json:"username"`
	PasswordHash string `bson:"password" json:"-"`
	Email        string `bson:"email" json:"email"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
