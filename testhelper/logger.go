package testhelper

import "github.com/clipfeed/backend/internal/logger"

// NopLogger is a logger.Logger that discards everything. Use it in tests
// where log output is irrelevant.
type NopLogger struct{}

var _ logger.Logger = NopLogger{}

func (NopLogger) LogInfo(msg string, fields map[string]interface{})  {}
func (NopLogger) LogError(err error, msg string) error               { return err }
func (NopLogger) LogErrorf(err error, format string, args ...interface{}) error {
	return err
}
func (NopLogger) LogFatal(err error, context string)                {}
func (NopLogger) LogDebug(msg string, fields map[string]interface{}) {}
func (NopLogger) LogWarn(msg string, fields map[string]interface{})  {}
