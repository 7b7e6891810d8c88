package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// logrusService wraps logrus.Logger to provide consistent logging across the application
type logrusService struct {
	logger *logrus.Logger
}

// NewService creates a new Logger instance with the specified configuration
func NewService(config *Config) (Logger, error) {
	log := logrus.New()

	switch config.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: config.Development,
		})
	}

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %v", err)
	}
	log.SetLevel(level)

	switch config.Output {
	case "", "stdout":
		log.SetOutput(os.Stdout)
	case "stderr":
		log.SetOutput(os.Stderr)
	default:
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %v", err)
		}
		log.SetOutput(file)
	}

	return &logrusService{logger: log}, nil
}

// LogInfo logs an informational message with optional fields
func (l *logrusService) LogInfo(msg string, fields map[string]interface{}) {
	if fields != nil {
		l.logger.WithFields(fields).Info(msg)
	} else {
		l.logger.Info(msg)
	}
}

// LogError logs an error with context and returns the error so callers can propagate it
func (l *logrusService) LogError(err error, msg string) error {
	if err != nil {
		l.logger.WithError(err).Error(msg)
	}
	return err
}

// LogErrorf logs a formatted error message with context and returns the error
func (l *logrusService) LogErrorf(err error, format string, args ...interface{}) error {
	if err != nil {
		l.logger.WithError(err).Errorf(format, args...)
	}
	return err
}

// LogFatal logs a fatal error and exits the application
func (l *logrusService) LogFatal(err error, context string) {
	l.logger.WithError(err).Fatal(context)
}

// LogDebug logs a debug message with optional fields
func (l *logrusService) LogDebug(msg string, fields map[string]interface{}) {
	if fields != nil {
		l.logger.WithFields(fields).Debug(msg)
	} else {
		l.logger.Debug(msg)
	}
}

// LogWarn logs a warning message with optional fields
func (l *logrusService) LogWarn(msg string, fields map[string]interface{}) {
	if fields != nil {
		l.logger.WithFields(fields).Warn(msg)
	} else {
		l.logger.Warn(msg)
	}
}
