package db

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), level)
}

// OpenGormWithDialector lets tests hand in a dialector over a mocked *sql.DB.
func OpenGormWithDialector(dial gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
		// Unique-key violations surface as gorm.ErrDuplicatedKey.
		TranslateError: true,
		// Rows outlive the accounts that created them (audit trail).
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableAutomaticPing:                     true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}
	logrus.Info("gorm: connected")
	return db, nil
}

// ParseLogLevel maps LOG_LEVEL style names onto gorm's levels. SQL is only
// traced at debug.
func ParseLogLevel(s string) logger.LogLevel {
	switch s {
	case "debug", "trace":
		return logger.Info
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	}
	return logger.Warn
}
