package cartControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/middleware"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// -------- Core Logic --------

// AddToCart merges by addition: an existing (user, product) row gains
// quantity, otherwise a new row is inserted.
func AddToCart(db *gorm.DB, userID, productID uint, qty int) (*models.CartItem, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		item.Product = &product
		return &item, nil
	}
	if err != nil {
		return nil, err
	}

	item.Quantity += qty
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	item.Product = &product
	return &item, nil
}

// UpdateCartItem sets the quantity absolutely; qty <= 0 removes the row.
func UpdateCartItem(db *gorm.DB, userID, itemID uint, qty int) (*models.CartItem, error) {
	var item models.CartItem
	if err := db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		return nil, err
	}

	if qty <= 0 {
		if err := db.Delete(&item).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}

	item.Quantity = qty
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CartTotal returns 0 for an empty cart, never an SQL NULL.
func CartTotal(db *gorm.DB, userID uint) (float64, error) {
	var total float64
	err := db.Model(&models.CartItem{}).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Select("COALESCE(SUM(products.price * cart_items.quantity), 0)").
		Scan(&total).Error
	return total, err
}

// -------- Handlers --------

// GET /api/cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		total, err := CartTotal(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}

// POST /api/cart
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddToCart(db, userID, input.ProductID, input.Quantity)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": ErrProductNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /api/cart/:id
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var itemID uint
		if _, err := fmt.Sscan(c.Param("id"), &itemID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := UpdateCartItem(db, userID, itemID, input.Quantity)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		if item == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:id
func DeleteCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /api/cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
