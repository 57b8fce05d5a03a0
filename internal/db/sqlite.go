package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Options struct {
	SlowQueryThreshold time.Duration
	LogLevel           gormlogger.LogLevel
	MaxOpenConns       int
}

func DefaultOptions() Options {
	return Options{
		SlowQueryThreshold: time.Second,
		LogLevel:           gormlogger.Warn,
		MaxOpenConns:       4,
	}
}

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	return OpenSQLiteWithOptions(dbPath, DefaultOptions())
}

func OpenSQLiteWithOptions(dbPath string, options Options) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	if options.SlowQueryThreshold <= 0 {
		options.SlowQueryThreshold = time.Second
	}
	if options.LogLevel == 0 {
		options.LogLevel = gormlogger.Warn
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             options.SlowQueryThreshold,
				LogLevel:                  options.LogLevel,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if options.MaxOpenConns > 0 {
		sqlDB, err := database.DB()
		if err != nil {
			return nil, fmt.Errorf("open sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(options.MaxOpenConns)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}
