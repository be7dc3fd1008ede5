package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cornerstore/api/internal/config"
	"github.com/cornerstore/api/internal/logger"
	"github.com/cornerstore/api/internal/models"
)

var DB *gorm.DB

func Init(cfg config.Config) {

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		logger.Log.Fatal("Failed to connect to DB", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		logger.Log.Fatal("Failed to migrate DB", zap.Error(err))
	}

	if cfg.SeedDB {
		if err := Seed(DB); err != nil {
			logger.Log.Fatal("Failed to seed DB", zap.Error(err))
		}
	}

	logger.Log.Info("Database connected and migrated successfully")
}

// Migrate provisions the five corner-store tables.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.Cashier{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	)
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}
