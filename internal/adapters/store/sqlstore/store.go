// Package sqlstore implements the task and account persistence ports on a
// relational database through GORM. PostgreSQL is the production dialect;
// SQLite serves local runs and tests.
package sqlstore

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds connection settings.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// LogSQL enables GORM's statement logger at warn level.
	LogSQL bool
}

// DB owns the GORM handle shared by the task and user stores.
type DB struct {
	db *gorm.DB
}

// Open connects using the configured driver and migrates the schema.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", cfg.Driver)
	}

	level := logger.Silent
	if cfg.LogSQL {
		level = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	store := New(db)
	if err := store.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return store, nil
}

// New wraps an existing GORM handle without migrating.
func New(db *gorm.DB) *DB {
	return &DB{db: db}
}

// Migrate creates or updates the tasks and users tables.
func (d *DB) Migrate(ctx context.Context) error {
	if err := d.db.WithContext(ctx).AutoMigrate(&taskRow{}, &userRow{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Tasks returns a TaskStore.
func (d *DB) Tasks() *TaskStore { return &TaskStore{db: d.db} }

// Users returns a UserStore.
func (d *DB) Users() *UserStore { return &UserStore{db: d.db} }

// Name implements ports.HealthChecker.
func (d *DB) Name() string { return "database" }

// HealthCheck implements ports.HealthChecker.
func (d *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (d *DB) Close(_ context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
