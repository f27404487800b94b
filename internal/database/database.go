package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/config"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the log sink connection; nil when LOG_SINK is "none".
var DB *gorm.DB

var ErrNotConfigured = errors.New("log sink database not configured")

func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.LogSink {
	case config.LogSinkPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.LogSinkSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return ErrNotConfigured
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.LogSink == config.LogSinkSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected", "driver", cfg.LogSink)
	return nil
}

// Migrate creates the system_logs table.
func Migrate() error {
	if DB == nil {
		return ErrNotConfigured
	}
	return DB.AutoMigrate(&models.SystemLog{})
}

func Ping() error {
	if DB == nil {
		return ErrNotConfigured
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
