package config

import (
	"log"
	"os"
	"strconv"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens, read from env or fallback
var JWTSecret []byte

// TaxRate applied to every order subtotal
var TaxRate decimal.Decimal

// Load reads .env (if present) and resolves all settings.
func Load() {
	// Missing .env is fine; env vars still apply
	_ = godotenv.Load()

	JWTSecret = []byte(getEnv("JWT_SECRET", "food_ordering_super_secret_2024"))

	rate, err := decimal.NewFromString(getEnv("TAX_RATE", "0.08"))
	if err != nil {
		log.Fatal("Invalid TAX_RATE:", err)
	}
	TaxRate = rate
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnv exposes env lookup with fallback to other packages.
func GetEnv(key, fallback string) string {
	return getEnv(key, fallback)
}

// GetEnvInt reads an integer env var with fallback.
func GetEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "food_ordering.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// Migrate runs auto-migration for all models. Split out so tests can apply
// it to an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	)
}
