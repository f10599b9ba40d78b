package models

import (
	"time"

	"gorm.io/gorm"
)

// File is an uploaded asset (product/category images) stored on disk with a
// row pointing at its public URL.
type File struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"not null" json:"name"` // original client file name
	StoredName string    `gorm:"not null" json:"stored_name"`
	URL        string    `gorm:"not null" json:"url"`
	EntityType string    `gorm:"index:idx_file_entity" json:"entity_type"` // e.g. "product"
	EntityID   uint      `gorm:"index:idx_file_entity" json:"entity_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func SaveFile(db *gorm.DB, f *File) error {
	return db.Create(f).Error
}

func FilesForEntity(db *gorm.DB, entityType string, entityID uint) ([]File, error) {
	var files []File
	err := db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").Find(&files).Error
	return files, err
}
