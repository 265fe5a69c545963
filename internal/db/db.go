package db

import (
	"suddenlyspaces/internal/config" // Application configuration
	"suddenlyspaces/internal/domain" // Importing domain models

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Open connects to the MySQL database described by the configuration
func Open(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{}) // Open a connection to the database
}

// Migrate creates or updates the schema for all domain models
func Migrate(gdb *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	return gdb.AutoMigrate(&domain.User{}, &domain.Property{}, &domain.Application{})
}
