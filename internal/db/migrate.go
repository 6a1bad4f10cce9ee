package db

import (
	"campus_market/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// defaultCategories is the reference data browsed by the storefront
var defaultCategories = []string{
	"Electronics",
	"Books & Study",
	"Clothing",
	"Sports & Fitness",
	"Daily Essentials",
	"Other",
}

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = conn.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Product{}, &domain.ProductImage{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	if err := SeedCategories(conn); err != nil {
		logrus.Fatalf("category seed failed: %v", err) // Log fatal error if seeding fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// SeedCategories inserts the default category set when the table is empty
func SeedCategories(conn *gorm.DB) error {
	var count int64 // Existing category count
	if err := conn.Model(&domain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded, leave the reference data alone
	}
	categories := make([]domain.Category, 0, len(defaultCategories))
	for _, name := range defaultCategories {
		categories = append(categories, domain.Category{Name: name})
	}
	return conn.Create(&categories).Error // Bulk insert the defaults
}
