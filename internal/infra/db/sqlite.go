package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-app/backend/config"
)

const sqliteScheme = "sqlite://"

// Open connects to PostgreSQL, or to SQLite when the URL starts with sqlite://.
func Open(cfg *config.DatabaseConfig) (*Database, error) {
	if dsn, ok := strings.CutPrefix(cfg.URL, sqliteScheme); ok {
		return NewSQLiteConnection(dsn, cfg)
	}
	return NewPostgresConnection(cfg)
}

// NewSQLiteConnection opens a pure-Go SQLite database, used for local runs and tests.
// SQLite allows one writer, so the pool holds a single connection.
func NewSQLiteConnection(dsn string, cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Database{
		db:  db,
		cfg: cfg,
	}, nil
}
