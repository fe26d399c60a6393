package storage

import (
	"os"
	"path/filepath"

	"billmint-backend/internal/apperrors"
	"billmint-backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open builds the shared database handle. The default driver is a sqlite
// file; the directory holding it is created if absent and the pool is capped
// at a single connection so the engine serializes all access. DB_DRIVER can
// select postgres instead, in which case DATABASE_URL is used as-is.
//
// The returned handle is injected into every repository; cmd/server owns
// opening it at startup and closing it at shutdown.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch cfg.DBDriver {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.DBURL), gormCfg)
		if err != nil {
			return nil, apperrors.Storage("failed to connect database", err)
		}
		return db, nil
	default:
		if dir := filepath.Dir(cfg.DBPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, apperrors.Storage("failed to create database directory", err)
			}
		}

		db, err := gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
		if err != nil {
			return nil, apperrors.Storage("failed to connect database", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, apperrors.Storage("failed to access connection pool", err)
		}
		// Single shared connection, like the storage engine expects.
		sqlDB.SetMaxOpenConns(1)

		return db, nil
	}
}

// Migrate creates the tables and indexes on first run.
func Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return apperrors.Storage("failed to migrate schema", err)
	}
	return nil
}

// Close releases the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
