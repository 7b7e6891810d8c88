package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger implements GORM's logger.Interface and integrates with the
// application logging system
type GormLogger struct {
	logger    Logger
	slowQuery time.Duration
}

// NewGormLogger creates a new GORM logger instance
func NewGormLogger(logger Logger, slowQuery time.Duration) gormlogger.Interface {
	return &GormLogger{
		logger:    logger,
		slowQuery: slowQuery,
	}
}

// LogMode implements GORM's logger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return l
}

// Info implements GORM's logger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	l.logger.LogInfo(fmt.Sprintf(msg, data...), map[string]interface{}{
		"source": "gorm",
	})
}

// Warn implements GORM's logger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	l.logger.LogWarn(fmt.Sprintf(msg, data...), map[string]interface{}{
		"source": "gorm",
	})
}

// Error implements GORM's logger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	l.logger.LogError(fmt.Errorf(msg, data...), "GORM error")
}

// Trace implements GORM's logger.Interface
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := map[string]interface{}{
		"source":        "gorm",
		"duration":      elapsed.String(),
		"rows_affected": rows,
		"sql":           sql,
	}

	if elapsed > l.slowQuery {
		l.logger.LogWarn("SLOW SQL >= "+l.slowQuery.String(), fields)
		return
	}

	// Record-not-found is an expected outcome, not an error worth logging
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.logger.LogWarn("SQL error", map[string]interface{}{
			"source": "gorm",
			"sql":    sql,
			"error":  err.Error(),
		})
	}
}
