package models

import "time"

type ProductType string

const (
	ProductTypeNormal  ProductType = "normal"
	ProductTypeBouquet ProductType = "bouquet"
)

type Product struct {
	ID             uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string       `gorm:"not null" json:"name"`
	Description    string       `json:"description"`
	Price          float64      `gorm:"not null" json:"price"`
	Type           ProductType  `gorm:"type:VARCHAR(20);default:'normal'" json:"type"`
	SubcategoryID  *uint        `gorm:"index" json:"subcategory_id"`
	Subcategory    *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
	Rating         float64      `gorm:"default:0" json:"rating"` // mean of review ratings, denormalized
	PurchasesCount int          `gorm:"default:0" json:"purchases_count"`
	Image          string       `json:"image"`
	// Composition of a bouquet; empty for normal products.
	BouquetFlowers []BouquetFlower `gorm:"foreignKey:BouquetID;constraint:OnDelete:CASCADE" json:"bouquet_flowers,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type Flower struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	InStock   bool      `gorm:"default:true" json:"in_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BouquetFlower links a bouquet product to a flower with a count.
type BouquetFlower struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	BouquetID uint    `gorm:"not null;index" json:"bouquet_id"`
	FlowerID  uint    `gorm:"not null;index" json:"flower_id"`
	Flower    *Flower `gorm:"foreignKey:FlowerID" json:"flower,omitempty"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
}
