package models

import "time"

// AuditLog is kept in Postgres, apart from the inventory documents.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Actor    string `gorm:"size:100;index" json:"actor"`
	Action   string `gorm:"size:50;not null" json:"action"`
	Entity   string `gorm:"size:50;index" json:"entity"`
	EntityID string `gorm:"size:64" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
