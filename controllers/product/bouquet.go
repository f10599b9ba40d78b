package productControllers

import (
	"fmt"

	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

type BouquetFlowerInput struct {
	FlowerID uint `json:"flower_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// DeriveBouquetPrice sums flower.price * quantity over the composition at
// current flower prices. Later flower price changes do not touch bouquets
// already written.
func DeriveBouquetPrice(db *gorm.DB, links []BouquetFlowerInput) (float64, error) {
	var total float64
	for _, link := range links {
		var flower models.Flower
		if err := db.First(&flower, "id = ?", link.FlowerID).Error; err != nil {
			return 0, fmt.Errorf("flower %d: %w", link.FlowerID, err)
		}
		total += flower.Price * float64(link.Quantity)
	}
	return total, nil
}

// replaceBouquetFlowers rewrites the composition links of a bouquet.
func replaceBouquetFlowers(tx *gorm.DB, bouquetID uint, links []BouquetFlowerInput) error {
	if err := tx.Where("bouquet_id = ?", bouquetID).Delete(&models.BouquetFlower{}).Error; err != nil {
		return err
	}
	for _, link := range links {
		bf := models.BouquetFlower{
			BouquetID: bouquetID,
			FlowerID:  link.FlowerID,
			Quantity:  link.Quantity,
		}
		if err := tx.Create(&bf).Error; err != nil {
			return err
		}
	}
	return nil
}
