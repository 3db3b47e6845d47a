package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kibahcorps/schedule1-go/internal/adapters/persistence"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/config"
)

var dialectors = map[string]func(dsn string) gorm.Dialector{
	"postgres": postgres.Open,
	"sqlite":   sqlite.Open,
}

// NewConnection opens the database described by cfg without touching the schema
func NewConnection(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	open, ok := dialectors[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	db, err := gorm.Open(open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Type, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying db: %w", err)
	}

	if cfg.Type == "sqlite" {
		// A second connection to :memory: would see a different, empty database
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}
	sqlDB.SetMaxOpenConns(cfg.Pool.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Pool.MaxIdle)
	sqlDB.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	return db, nil
}

// AutoMigrate creates or updates the saved recipe and dealer sale tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&persistence.SavedRecipeModel{},
		&persistence.DealerTransactionModel{},
	)
}

// Open connects with cfg and migrates the schema
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// OpenMemory opens a migrated in-process SQLite database
func OpenMemory() (*gorm.DB, error) {
	return Open(&config.DatabaseConfig{Type: "sqlite", Path: ":memory:"})
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
