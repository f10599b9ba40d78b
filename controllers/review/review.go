package reviewControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/middleware"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

type ReviewInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Title     string `json:"title"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// RecalculateProductRating refreshes the denormalized mean on the product.
// Review write paths call it explicitly after committing their change.
func RecalculateProductRating(db *gorm.DB, productID uint) error {
	var avg float64
	if err := db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return err
	}
	return db.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("rating", avg).Error
}

// GET /api/products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Where("product_id = ?", c.Param("id")).
			Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /api/reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		review := models.Review{
			UserID:    userID,
			ProductID: input.ProductID,
			Title:     input.Title,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		if err := RecalculateProductRating(db, input.ProductID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh product rating"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// PUT /api/reviews/:id
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var review models.Review
		if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
			return
		}

		var input struct {
			Title   *string `json:"title"`
			Rating  *int    `json:"rating"`
			Comment *string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
			return
		}

		updates := make(map[string]interface{})
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Rating != nil {
			updates["rating"] = *input.Rating
		}
		if input.Comment != nil {
			updates["comment"] = *input.Comment
		}

		if len(updates) > 0 {
			if err := db.Model(&review).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
				return
			}
			if err := RecalculateProductRating(db, review.ProductID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh product rating"})
				return
			}
		}
		c.JSON(http.StatusOK, review)
	}
}

// DELETE /api/reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var review models.Review
		if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if err := RecalculateProductRating(db, review.ProductID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh product rating"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
