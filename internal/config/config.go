package config

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	sslModeDisable = "disable"
	sslModeRequire = "require"

	envPrefix = "BOOKMARKER"
)

var logLevels = []string{"debug", "info", "warn", "error"}

type (
	Config struct {
		Host       string        `mapstructure:"HOST"`
		Port       string        `mapstructure:"PORT"`
		GRPCPort   string        `mapstructure:"GRPC_PORT"`
		DBHost     string        `mapstructure:"DB_HOST"`
		DBPort     string        `mapstructure:"DB_PORT"`
		DBUser     string        `mapstructure:"DB_USER"`
		DBPassword string        `mapstructure:"DB_PASSWORD"`
		DBName     string        `mapstructure:"DB_NAME"`
		DBSSLMode  string        `mapstructure:"DB_SSL_MODE"`
		JWTSecret  string        `mapstructure:"JWT_SECRET"`
		JWTTTL     time.Duration `mapstructure:"JWT_TTL"`
		BcryptCost int           `mapstructure:"BCRYPT_COST"`
		LogLevel   string        `mapstructure:"LOG_LEVEL"`
		LogPretty  bool          `mapstructure:"LOG_PRETTY"`
	}
)

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "1323")
	v.SetDefault("GRPC_PORT", "9000")
	v.SetDefault("DB_HOST", "0.0.0.0")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "user")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "db")
	v.SetDefault("DB_SSL_MODE", sslModeDisable)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "15m")
	v.SetDefault("BCRYPT_COST", 14)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	envs := []string{
		"HOST", "PORT", "GRPC_PORT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"JWT_SECRET", "JWT_TTL", "BCRYPT_COST",
		"LOG_LEVEL", "LOG_PRETTY",
	}
	for _, key := range envs {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func (c *Config) HTTPAddr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) GRPCAddr() string {
	return c.Host + ":" + c.GRPCPort
}

func validate(cfg *Config) error {
	if !contains([]string{sslModeDisable, sslModeRequire}, cfg.DBSSLMode) {
		return errors.New(fmt.Sprintf("DB SSL mode is invalid: %s", cfg.DBSSLMode))
	}
	if !contains(logLevels, cfg.LogLevel) {
		return errors.New(fmt.Sprintf("log level is invalid: %s", cfg.LogLevel))
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT secret is empty")
	}
	if cfg.JWTTTL <= 0 {
		return errors.New(fmt.Sprintf("JWT TTL must be positive: %s", cfg.JWTTTL))
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return errors.New(fmt.Sprintf("bcrypt cost is out of range: %d", cfg.BcryptCost))
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
