package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

// DELETE /api/products/admin/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("bouquet_id = ?", productID).Delete(&models.BouquetFlower{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", productID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", productID).Delete(&models.Product{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
