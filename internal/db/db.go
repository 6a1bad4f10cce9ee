package db

import (
	"campus_market/internal/config" // Application configuration

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Connect opens the MySQL connection shared by all request handlers.
// The underlying pool is bounded by cfg.DBPoolSize; requests beyond the
// bound queue for a connection instead of failing.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	conn, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err // Connection failure is fatal for the caller
	}
	sqlDB, err := conn.DB() // Access the underlying *sql.DB for pool settings
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBPoolSize) // Bound concurrent connections
	sqlDB.SetMaxIdleConns(cfg.DBPoolSize) // Keep the pool warm up to the bound
	return conn, nil
}
