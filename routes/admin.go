package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/admin"
	categoryControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/category"
	fileControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/file"
	flowerControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/flower"
	holidayControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/holiday"
	productControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/product"
	userControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/user"
	"github.com/molch4nov/e-flower-shop-sub000/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the admin-panel endpoints (JWT-protected).
// Admin order endpoints live in SetupOrderRoutes.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, cfg Config) {
	api.POST("/admin/login", adminControllers.AdminLoginHandler())

	products := api.Group("/products/admin")
	products.Use(middleware.RequireAdmin)
	{
		products.POST("", productControllers.CreateProduct(db))
		products.PUT("/:id", productControllers.UpdateProduct(db))
		products.DELETE("/:id", productControllers.DeleteProduct(db))
		products.GET("/export", productControllers.ExportProductsToExcel(db))
		products.POST("/import", productControllers.ImportProductsFromExcel(db))
	}

	flowers := api.Group("/flowers/admin")
	flowers.Use(middleware.RequireAdmin)
	{
		flowers.POST("", flowerControllers.CreateFlower(db))
		flowers.PUT("/:id", flowerControllers.UpdateFlower(db))
		flowers.DELETE("/:id", flowerControllers.DeleteFlower(db))
	}

	categories := api.Group("/categories/admin")
	categories.Use(middleware.RequireAdmin)
	{
		categories.POST("", categoryControllers.CreateCategory(db))
		categories.PUT("/:id", categoryControllers.UpdateCategory(db))
		categories.DELETE("/:id", categoryControllers.DeleteCategory(db))
	}

	subcategories := api.Group("/subcategories/admin")
	subcategories.Use(middleware.RequireAdmin)
	{
		subcategories.POST("", categoryControllers.CreateSubcategory(db))
		subcategories.DELETE("/:id", categoryControllers.DeleteSubcategory(db))
	}

	holidays := api.Group("/holidays/admin")
	holidays.Use(middleware.RequireAdmin)
	{
		holidays.POST("", holidayControllers.CreateHoliday(db))
		holidays.PUT("/:id", holidayControllers.UpdateHoliday(db))
		holidays.DELETE("/:id", holidayControllers.DeleteHoliday(db))
	}

	admin := api.Group("/users/admin")
	admin.Use(middleware.RequireAdmin)
	{
		admin.GET("", userControllers.GetAllUsers(db))
	}

	files := api.Group("/files/admin")
	files.Use(middleware.RequireAdmin)
	{
		files.DELETE("/:id", fileControllers.DeleteFileHandler(db, cfg.UploadDir))
	}
}
