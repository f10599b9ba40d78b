package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/middleware"
	"gorm.io/gorm"
)

// Config carries the few knobs route registration needs besides the DB.
type Config struct {
	UploadDir     string
	PublicBaseURL string
}

// SetupRoutes wires every API group under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg Config) {
	resolver := middleware.NewSessionResolver(db)
	api := r.Group("/api")

	SetupAuthRoutes(api, db, resolver)
	SetupPublicRoutes(api, db)
	SetupUserRoutes(api, db, resolver, cfg)
	SetupOrderRoutes(api, db, resolver)
	SetupAdminRoutes(api, db, cfg)
}
