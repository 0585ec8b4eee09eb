package database

import (
	"fmt"
	"log"

	"github.com/lakshmiplex/canteen-api/internal/config"
	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Category{},
		&entity.Product{},
		&entity.Purchase{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the default menu so a fresh install has
// something to sell.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	menu := []struct {
		category string
		products []entity.Product
	}{
		{"Snacks", []entity.Product{
			{Name: "Popcorn", Price: 50, Stock: 100},
			{Name: "Samosa", Price: 20, Stock: 80},
			{Name: "Veg Puff", Price: 25, Stock: 60},
		}},
		{"Beverages", []entity.Product{
			{Name: "Tea", Price: 15, Stock: 150},
			{Name: "Coffee", Price: 25, Stock: 150},
			{Name: "Soft Drink", Price: 40, Stock: 120},
		}},
	}

	for _, group := range menu {
		var category entity.Category
		err := db.Where("name = ?", group.category).First(&category).Error
		if err != nil {
			category = entity.Category{Name: group.category}
			if err := db.Create(&category).Error; err != nil {
				log.Printf("Warning: failed to create category %s: %v", group.category, err)
				continue
			}
		}

		for i := range group.products {
			var existing entity.Product
			if err := db.Where("name = ?", group.products[i].Name).First(&existing).Error; err == nil {
				continue
			}
			group.products[i].CategoryID = category.ID
			if err := db.Create(&group.products[i]).Error; err != nil {
				log.Printf("Warning: failed to create product %s: %v", group.products[i].Name, err)
			}
		}
	}

	return nil
}
