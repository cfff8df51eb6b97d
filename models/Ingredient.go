package models

import "time"

// Ingredient is the row backing domain.Ingredient. Rows are hard-deleted so the
// unique name can be reused after a delete.
type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
