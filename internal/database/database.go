// Package database opens the storage backends that back the snapshot
// repository: per-owner JSON files, an embedded sqlite database, or postgres.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"financecontrol/internal/config"
	"financecontrol/internal/logger"
	"financecontrol/internal/snapshot"
)

// Manager handles the postgres connection for the snapshot store.
type Manager struct {
	db  *gorm.DB
	url string
}

// NewManager connects to postgres using the app configuration.
func NewManager(cfg *config.Config) (*Manager, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)

	return &Manager{db: db, url: url}, nil
}

// RunMigrations applies pending SQL migrations from the migrations/ directory.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.url)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// MigrationURL returns the postgres URL built from the app configuration,
// for use by the standalone migration runner.
func MigrationURL(cfg *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
}

// OpenSQLite opens (or creates) the embedded sqlite database and ensures the
// snapshots table exists.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&snapshot.Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
	}
	return db, nil
}

// OpenRepository builds the snapshot repository selected by STORAGE_BACKEND.
func OpenRepository(cfg *config.Config) (snapshot.Repository, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		db, err := OpenSQLite(filepath.Join(cfg.DataDir, "financecontrol.db"))
		if err != nil {
			return nil, err
		}
		return snapshot.NewDBRepository(db), nil
	case config.BackendPostgres:
		mgr, err := NewManager(cfg)
		if err != nil {
			return nil, err
		}
		if err := mgr.RunMigrations(); err != nil {
			return nil, err
		}
		return snapshot.NewDBRepository(mgr.DB()), nil
	default:
		return snapshot.NewFileRepository(cfg.DataDir)
	}
}
