package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("SESSION_TTL_HOURS", "")

	cfg := Load()

	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, "admin@admin.com", cfg.AdminEmail)
	assert.Equal(t, "123admin", cfg.AdminPassword)
	assert.Equal(t, "plain", cfg.PasswordHashing)
	assert.Equal(t, "TheBoar", cfg.MongoDatabase)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("DB_DRIVER", DriverMongo)
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("PASSWORD_HASHING", "bcrypt")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, DriverMongo, cfg.DBDriver)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "bcrypt", cfg.PasswordHashing)
	assert.False(t, cfg.MetricsEnabled)
}
