package dbmodels

import (
	"time"
)

// BaseModel carries the id and timestamps shared by every record. List
// endpoints order by CreatedAt, hence the index.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
