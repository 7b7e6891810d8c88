package logger

// Config holds the logger configuration
type Config struct {
	// Log level (debug, info, warn, error, fatal)
	Level string `mapstructure:"level" yaml:"level"`

	// Output format (json or text)
	Format string `mapstructure:"format" yaml:"format"`

	// Output destination (stdout, stderr or a file path)
	Output string `mapstructure:"output" yaml:"output"`

	// Development mode enables full timestamps in text output
	Development bool `mapstructure:"development" yaml:"development"`
}
