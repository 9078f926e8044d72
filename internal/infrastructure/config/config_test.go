package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalConfig() *Config {
	cfg := &Config{}
	cfg.Host.BaseURL = "http://legacy-host.local"
	applyDefaults(cfg)
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := minimalConfig()

	assert.Equal(t, "hostbridge", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 8*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Host.TimeoutSeconds)
}

func TestValidate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		cfg := minimalConfig()
		assert.NoError(t, cfg.validate())
	})

	t.Run("missing host base url", func(t *testing.T) {
		cfg := minimalConfig()
		cfg.Host.BaseURL = ""
		assert.Error(t, cfg.validate())
	})

	t.Run("relative host base url", func(t *testing.T) {
		cfg := minimalConfig()
		cfg.Host.BaseURL = "/api/service.asmx"
		assert.Error(t, cfg.validate())
	})

	t.Run("idle conns above open conns", func(t *testing.T) {
		cfg := minimalConfig()
		cfg.Database.MaxIdleConns = 50
		cfg.Database.MaxOpenConns = 10
		assert.Error(t, cfg.validate())
	})

	t.Run("production requires secrets", func(t *testing.T) {
		cfg := minimalConfig()
		cfg.App.Env = "production"
		assert.Error(t, cfg.validate())

		cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
		cfg.Database.Password = "pw"
		cfg.Database.SSLMode = "require"
		assert.NoError(t, cfg.validate())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "svc",
		Password: "p@ss/word",
		DBName:   "bridge",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	require.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// password must be escaped, not raw
	assert.NotContains(t, dsn, "p@ss/word@")
}
