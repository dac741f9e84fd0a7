package database

import (
	"fmt"
	"os"

	"backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Driver name constants
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// FromEnv resolves the driver and DSN from the environment. SQLite is the
// default so a purchase-history export can be analyzed locally without a
// server; set DB_DRIVER=postgres for deployments.
func FromEnv() (driver, dsn string) {
	driver = os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = DriverSQLite
	}

	if driver == DriverSQLite {
		dsn = os.Getenv("DB_PATH")
		if dsn == "" {
			dsn = "orders.db"
		}
		return driver, dsn
	}

	dbHost := getenvDefault("DB_HOST", "localhost")
	dbPort := getenvDefault("DB_PORT", "5432")
	dbUser := getenvDefault("DB_USER", "postgres")
	dbPassword := getenvDefault("DB_PASSWORD", "postgres")
	dbName := getenvDefault("DB_NAME", "postgres")
	dbSslMode := getenvDefault("DB_SSLMODE", "disable")

	return driver, "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewConnection initializes a new connection pool using GORM. The driver is
// selected by name: postgres for deployments, sqlite for local analysis of a
// purchase-history export.
func NewConnection(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Order{},
		&model.User{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate failed: %w", err)
	}

	return db, nil
}
