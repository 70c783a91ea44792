package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BOOKMARKER_JWT_SECRET", "secret")

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Host)
		assert.Equal(t, "1323", cfg.Port)
		assert.Equal(t, "9000", cfg.GRPCPort)
		assert.Equal(t, sslModeDisable, cfg.DBSSLMode)
		assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
		assert.Equal(t, 14, cfg.BcryptCost)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.LogPretty)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("BOOKMARKER_JWT_SECRET", "secret")
		t.Setenv("BOOKMARKER_PORT", "8080")
		t.Setenv("BOOKMARKER_DB_SSL_MODE", sslModeRequire)
		t.Setenv("BOOKMARKER_JWT_TTL", "1h")
		t.Setenv("BOOKMARKER_BCRYPT_COST", "10")
		t.Setenv("BOOKMARKER_LOG_LEVEL", "debug")
		t.Setenv("BOOKMARKER_LOG_PRETTY", "true")

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
		assert.Equal(t, sslModeRequire, cfg.DBSSLMode)
		assert.Equal(t, time.Hour, cfg.JWTTTL)
		assert.Equal(t, 10, cfg.BcryptCost)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.LogPretty)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("BOOKMARKER_JWT_SECRET", "")

		_, err := NewConfig()
		assert.Error(t, err)
	})

	t.Run("bad ssl mode", func(t *testing.T) {
		t.Setenv("BOOKMARKER_JWT_SECRET", "secret")
		t.Setenv("BOOKMARKER_DB_SSL_MODE", "verify-full")

		_, err := NewConfig()
		assert.Error(t, err)
	})
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "bookmarks",
		DBSSLMode:  sslModeDisable,
	}
	assert.Equal(t, "host=db user=u password=p dbname=bookmarks port=5432 sslmode=disable", cfg.DSN())
}
