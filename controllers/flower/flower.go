package flowerControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

type FlowerInput struct {
	Name    string   `json:"name" binding:"required"`
	Price   *float64 `json:"price" binding:"required"`
	InStock *bool    `json:"in_stock"`
}

// GET /api/flowers
func GetFlowers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var flowers []models.Flower
		if err := db.Order("name").Find(&flowers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch flowers"})
			return
		}
		c.JSON(http.StatusOK, flowers)
	}
}

// POST /api/flowers/admin
func CreateFlower(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FlowerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		flower := models.Flower{Name: input.Name, Price: *input.Price, InStock: true}
		if input.InStock != nil {
			flower.InStock = *input.InStock
		}
		if err := db.Create(&flower).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create flower"})
			return
		}
		c.JSON(http.StatusCreated, flower)
	}
}

// PUT /api/flowers/admin/:id
// Raising a flower's price here does not touch bouquets priced earlier.
func UpdateFlower(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var flower models.Flower
		if err := db.First(&flower, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Flower not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch flower"})
			return
		}

		var input struct {
			Name    *string  `json:"name"`
			Price   *float64 `json:"price"`
			InStock *bool    `json:"in_stock"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.InStock != nil {
			updates["in_stock"] = *input.InStock
		}

		if len(updates) > 0 {
			if err := db.Model(&flower).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flower"})
				return
			}
		}
		c.JSON(http.StatusOK, flower)
	}
}

// DELETE /api/flowers/admin/:id
func DeleteFlower(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64
		if err := db.Model(&models.BouquetFlower{}).
			Where("flower_id = ?", c.Param("id")).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check flower usage"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Flower is used in bouquets"})
			return
		}

		result := db.Where("id = ?", c.Param("id")).Delete(&models.Flower{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete flower"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flower not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Flower deleted"})
	}
}
