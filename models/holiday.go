package models

import "time"

// Holiday is reference data the storefront uses to suggest delivery dates.
type Holiday struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Date        string    `gorm:"not null" json:"date"` // "MM-DD", repeats yearly
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
