package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/order"
	"github.com/molch4nov/e-flower-shop-sub000/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, resolver middleware.SessionResolver) {
	orders := api.Group("/orders")
	orders.Use(middleware.RequireUser(resolver))
	{
		orders.POST("", orderControllers.CreateOrderHandler(db))
		orders.GET("", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
		orders.POST("/:id/cancel", orderControllers.CancelOrderHandler(db))
	}

	admin := api.Group("/orders/admin")
	admin.Use(middleware.RequireAdmin)
	{
		admin.GET("", orderControllers.GetAllOrdersHandler(db))
		admin.GET("/ws", orderControllers.OrderWebSocketHandler)
		admin.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		admin.PUT("/:id/payment", orderControllers.UpdatePaymentStatusHandler(db))
	}
}
