package main

import (
	"campus_market/internal/config" // Custom import path (Config)
	"campus_market/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Run schema migration and category seeding against the configured database
	db.Migrate(cfg.DSN())
}
