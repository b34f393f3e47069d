// Package db opens database/sql connections for the configured provider.
package db

import (
	"database/sql"
	"fmt"

	"github.com/lastings-labs/bankgen/internal/config"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connection wraps a database handle together with the config it came from.
type Connection struct {
	DB     *sql.DB
	Config *config.Config
}

// NewConnection opens and pings a connection using the provider's driver.
func NewConnection(cfg *config.Config) (*Connection, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(DriverName(cfg.Database.Provider), dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{DB: db, Config: cfg}, nil
}

// DriverName maps a provider label onto a registered driver.
func DriverName(provider string) string {
	switch provider {
	case "postgresql", "postgres":
		return "postgres"
	case "mysql":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return "postgres"
	}
}

func (c *Connection) Close() error {
	return c.DB.Close()
}
