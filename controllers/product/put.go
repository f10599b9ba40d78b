package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name          *string              `json:"name"`
	Description   *string              `json:"description"`
	Price         *float64             `json:"price"`
	SubcategoryID *uint                `json:"subcategory_id"`
	Image         *string              `json:"image"`
	Flowers       []BouquetFlowerInput `json:"flowers"`
}

// PUT /api/products/admin/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			updates := make(map[string]interface{})
			if input.Name != nil {
				updates["name"] = *input.Name
			}
			if input.Description != nil {
				updates["description"] = *input.Description
			}
			if input.SubcategoryID != nil {
				updates["subcategory_id"] = *input.SubcategoryID
			}
			if input.Image != nil {
				updates["image"] = *input.Image
			}

			if product.Type == models.ProductTypeBouquet && input.Flowers != nil {
				if err := replaceBouquetFlowers(tx, product.ID, input.Flowers); err != nil {
					return err
				}
				if input.Price == nil {
					// No explicit price with a new composition: re-derive.
					derived, err := DeriveBouquetPrice(tx, input.Flowers)
					if err != nil {
						return err
					}
					updates["price"] = derived
				}
			}
			if input.Price != nil {
				updates["price"] = *input.Price
			}

			if len(updates) == 0 {
				return nil
			}
			return tx.Model(&product).Updates(updates).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		if err := db.Preload("BouquetFlowers.Flower").First(&product, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
