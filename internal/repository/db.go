package repository

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBOptions tunes the connection pool and the GORM logger.
type DBOptions struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

// DefaultDBOptions mirrors the pool settings used in production.
var DefaultDBOptions = DBOptions{
	MaxIdleConns: 10,
	MaxOpenConns: 100,
	LogLevel:     logger.Warn,
}

// NewDB initializes a GORM DB connection using the provided DSN.
func NewDB(dsn string, opts DBOptions) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	}

	db, err := gorm.Open(mysql.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)

	return db, nil
}

// GormLogLevel maps an application log level onto GORM's logger levels.
func GormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug", "trace":
		return logger.Info
	case "error", "fatal", "panic":
		return logger.Error
	case "silent", "disabled":
		return logger.Silent
	default:
		return logger.Warn
	}
}
