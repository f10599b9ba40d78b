package models

type Category struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"unique;not null" json:"name"`
	Image         string        `json:"image"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
}

type Subcategory struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Name       string    `gorm:"not null" json:"name"`
	Products   []Product `gorm:"foreignKey:SubcategoryID" json:"products,omitempty"`
}
