package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/molch4nov/e-flower-shop-sub000/database"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"github.com/molch4nov/e-flower-shop-sub000/routes"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting flower shop API...")

	// Load environment variables
	_ = godotenv.Load()

	db, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		log.Fatalf("❌ DB init failed: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("❌ DB close failed: %v", err)
		}
	}()

	// Gin setup
	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20 // 32MB uploads

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	publicBaseURL := os.Getenv("PUBLIC_BASE_URL")

	// Serve uploaded images
	r.Static("/uploads", uploadDir)

	routes.SetupRoutes(r, db, routes.Config{
		UploadDir:     uploadDir,
		PublicBaseURL: publicBaseURL,
	})

	// Sweep expired sessions hourly
	go startSessionCleanup(db, time.Hour)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func allowedOrigins() []string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return []string{origin}
	}
	return []string{"*"}
}

// startSessionCleanup periodically removes expired session rows.
func startSessionCleanup(db *gorm.DB, interval time.Duration) {
	for {
		time.Sleep(interval)

		result := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
		if result.Error != nil {
			log.Printf("❌ Session cleanup failed: %v", result.Error)
			continue
		}
		if result.RowsAffected > 0 {
			log.Printf("🗑️ Removed %d expired sessions", result.RowsAffected)
		}
	}
}
