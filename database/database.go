package database

import (
	"fmt"
	"os"

	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config carries the connection settings; read it from the environment with
// ConfigFromEnv and hand the resulting *gorm.DB to the controllers. There is
// no package-level singleton.
type Config struct {
	URL      string // takes precedence when set
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func ConfigFromEnv() Config {
	return Config{
		URL:      os.Getenv("DATABASE_URL"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}
}

// Connect opens the PostgreSQL connection and runs migrations.
func Connect(cfg Config) (*gorm.DB, error) {
	dsn := cfg.URL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate creates/updates all tables. Tests call it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Session{},
		&models.Category{},
		&models.Subcategory{},
		&models.Flower{},
		&models.Product{},
		&models.BouquetFlower{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.File{},
		&models.Holiday{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
