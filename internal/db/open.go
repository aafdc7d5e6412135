package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
	"gorm.io/gorm/logger"
)

// Pool settings applied to every MySQL connection pool
const (
	maxOpenConns    = 25
	maxIdleConns    = 10
	connMaxLifetime = 30 * time.Minute
	connectAttempts = 5
	retryInterval   = 2 * time.Second
)

// Open connects to MySQL, retrying while the server comes up
func Open(dsn string, logLevel string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: newLogger(logLevel)}

	var db *gorm.DB
	var err error
	for i := 1; i <= connectAttempts; i++ {
		db, err = gorm.Open(mysql.Open(dsn), cfg)
		if err == nil {
			err = ping(db)
		}
		if err == nil {
			break
		}
		if i < connectAttempts {
			logrus.WithFields(logrus.Fields{
				"attempt": i,           // Current attempt
				"error":   err.Error(), // Error message
			}).Warn("Database not ready, retrying")
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to mysql after %d attempts: %w", connectAttempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	return db, nil
}

// Ping checks the database is reachable
func Ping(db *gorm.DB) error {
	return ping(db)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// newLogger maps a logrus level name onto the GORM logger
func newLogger(level string) logger.Interface {
	var logLevel logger.LogLevel
	switch level {
	case "debug", "trace":
		logLevel = logger.Info // Log every statement
	case "warn", "warning":
		logLevel = logger.Warn
	case "silent":
		logLevel = logger.Silent
	default:
		logLevel = logger.Error
	}
	return logger.Default.LogMode(logLevel)
}
