package db

import (
	"database/sql"
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds database connection configuration
type Config struct {
	// URL is the database connection URL (defaults to DATABASE_URL env var)
	URL string
	// Conn is an optional existing connection, used by tests to inject
	// a mock instead of dialing
	Conn *sql.DB
}

// Connect establishes a database connection.
// If no URL is provided, it reads from DATABASE_URL environment variable.
func Connect(cfg Config) (*gorm.DB, error) {
	// Default to silent logging unless PANELFORGE_LOG_LEVEL=debug is set
	logMode := logger.Silent
	if os.Getenv("PANELFORGE_LOG_LEVEL") == "debug" {
		logMode = logger.Info
	}

	pgConfig := postgres.Config{
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}

	if cfg.Conn != nil {
		pgConfig.Conn = cfg.Conn
	} else {
		dbURL := cfg.URL
		if dbURL == "" {
			dbURL = os.Getenv("DATABASE_URL")
		}
		if dbURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		pgConfig.DSN = dbURL
	}

	db, err := gorm.Open(
		postgres.New(pgConfig),
		&gorm.Config{
			Logger: logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
