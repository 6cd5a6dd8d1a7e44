package config

import (
	"log"
	"os"

	"food-marketplace-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_marketplace_dev_secret"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads a .env file if one exists and refreshes env-backed settings.
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		JWTSecret = []byte(v)
	}
}

// Port returns the HTTP listen port.
func Port() string {
	return getEnv("PORT", "5001")
}

func InitDB() {
	OpenDB(getEnv("DB_PATH", "food_marketplace.db"))
	log.Println("Database connected and migrated successfully")
}

// OpenDB opens (or creates) the sqlite database at path and migrates the
// schema. Tests pass throwaway paths under t.TempDir().
func OpenDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Feedback{},
		&models.SupportTicket{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	DB = db
	return db
}
