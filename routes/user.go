package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/cart"
	fileControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/file"
	reviewControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/review"
	userControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/user"
	"github.com/molch4nov/e-flower-shop-sub000/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers everything that needs a session cookie.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, resolver middleware.SessionResolver, cfg Config) {
	user := api.Group("")
	user.Use(middleware.RequireUser(resolver))
	{
		cart := user.Group("/cart")
		{
			cart.GET("", cartControllers.GetCartHandler(db))
			cart.POST("", cartControllers.AddToCartHandler(db))
			cart.PUT("/:id", cartControllers.UpdateCartItemHandler(db))
			cart.DELETE("/:id", cartControllers.DeleteCartItemHandler(db))
			cart.DELETE("", cartControllers.ClearCartHandler(db))
		}

		reviews := user.Group("/reviews")
		{
			reviews.POST("", reviewControllers.CreateReview(db))
			reviews.PUT("/:id", reviewControllers.UpdateReview(db))
			reviews.DELETE("/:id", reviewControllers.DeleteReview(db))
		}

		addresses := user.Group("/addresses")
		{
			addresses.GET("", userControllers.GetAddresses(db))
			addresses.POST("", userControllers.CreateAddress(db))
			addresses.PUT("/:id", userControllers.UpdateAddress(db))
			addresses.DELETE("/:id", userControllers.DeleteAddress(db))
		}

		user.POST("/files", fileControllers.UploadFileHandler(db, cfg.UploadDir, cfg.PublicBaseURL))
		user.GET("/files", fileControllers.ListFilesHandler(db))
	}
}
