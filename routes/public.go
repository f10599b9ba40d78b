package routes

import (
	"github.com/gin-gonic/gin"
	categoryControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/category"
	flowerControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/flower"
	holidayControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/holiday"
	productControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/product"
	reviewControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/review"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated storefront reads.
func SetupPublicRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/products", productControllers.GetProducts(db))
	api.GET("/products/:id", productControllers.GetProductByID(db))
	api.GET("/products/:id/reviews", reviewControllers.GetProductReviews(db))

	api.GET("/categories", categoryControllers.GetCategories(db))
	api.GET("/categories/:id", categoryControllers.GetCategoryByID(db))

	api.GET("/flowers", flowerControllers.GetFlowers(db))
	api.GET("/holidays", holidayControllers.GetHolidays(db))
}
