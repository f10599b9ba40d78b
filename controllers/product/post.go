package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name          string               `json:"name" binding:"required"`
	Description   string               `json:"description"`
	Price         *float64             `json:"price"`
	Type          string               `json:"type"`
	SubcategoryID *uint                `json:"subcategory_id"`
	Image         string               `json:"image"`
	Flowers       []BouquetFlowerInput `json:"flowers"`
}

// POST /api/products/admin
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		productType := models.ProductTypeNormal
		if input.Type == string(models.ProductTypeBouquet) {
			productType = models.ProductTypeBouquet
		} else if input.Type != "" && input.Type != string(models.ProductTypeNormal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product type"})
			return
		}

		if productType == models.ProductTypeNormal && input.Price == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price is required"})
			return
		}

		var product models.Product
		err := db.Transaction(func(tx *gorm.DB) error {
			price := 0.0
			if input.Price != nil {
				price = *input.Price
			} else {
				// Bouquet without an explicit price: derive from composition.
				derived, err := DeriveBouquetPrice(tx, input.Flowers)
				if err != nil {
					return err
				}
				price = derived
			}

			product = models.Product{
				Name:          input.Name,
				Description:   input.Description,
				Price:         price,
				Type:          productType,
				SubcategoryID: input.SubcategoryID,
				Image:         input.Image,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}

			if productType == models.ProductTypeBouquet {
				return replaceBouquetFlowers(tx, product.ID, input.Flowers)
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
