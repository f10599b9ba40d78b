package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/auth"
	userControllers "github.com/molch4nov/e-flower-shop-sub000/controllers/user"
	"github.com/molch4nov/e-flower-shop-sub000/middleware"
	"gorm.io/gorm"
)

func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, resolver middleware.SessionResolver) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authControllers.RegisterHandler(db))
		auth.POST("/login", authControllers.LoginHandler(db))

		me := auth.Group("")
		me.Use(middleware.RequireUser(resolver))
		{
			me.POST("/logout", authControllers.LogoutHandler(db))
			me.GET("/me", authControllers.MeHandler(db))
			me.PUT("/me", userControllers.UpdateUser(db))
		}
	}
}
