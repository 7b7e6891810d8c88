package config

import (
	"time"

	"github.com/clipfeed/backend/internal/logger"
)

// Config represents the application configuration
type Config struct {
	Environment string         `mapstructure:"environment" yaml:"environment"`
	Server      ServerConfig   `mapstructure:"server" yaml:"server"`
	Database    DatabaseConfig `mapstructure:"database" yaml:"database"`
	Redis       RedisConfig    `mapstructure:"redis" yaml:"redis"`
	Auth        AuthConfig     `mapstructure:"auth" yaml:"auth"`
	Storage     StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Cache       CacheConfig    `mapstructure:"cache" yaml:"cache"`
	Logging     logger.Config  `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig represents server configuration settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig represents database configuration settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Dbname   string `mapstructure:"dbname"`
	Port     int    `mapstructure:"port"`
	Sslmode  string `mapstructure:"sslmode"`
	Timezone string `mapstructure:"timezone"`
	Pool     struct {
		MaxOpen int `mapstructure:"maxOpen"`
		MaxIdle int `mapstructure:"maxIdle"`
	} `mapstructure:"pool"`
}

// RedisConfig represents Redis configuration settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig represents authentication configuration settings
type AuthConfig struct {
	JWT struct {
		Secret         string        `mapstructure:"secret"`
		AccessTokenTTL time.Duration `mapstructure:"accessTokenTTL"`
	} `mapstructure:"jwt"`
}

// StorageConfig represents object storage configuration settings
type StorageConfig struct {
	S3     S3Config     `mapstructure:"s3"`
	Upload UploadConfig `mapstructure:"upload"`
}

// S3Config represents S3 configuration settings
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	ForcePathStyle  bool   `mapstructure:"forcePathStyle"`
}

// UploadConfig represents asset upload configuration settings
type UploadConfig struct {
	MaxSize        int64    `mapstructure:"maxSize"`
	AllowedFormats []string `mapstructure:"allowedFormats"`
}

// CacheConfig represents cache configuration settings
type CacheConfig struct {
	ProfileTTL time.Duration `mapstructure:"profileTTL"`
}
