package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"toko-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "secret")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, float64(5), cfg.LoginRateLimit)
	assert.Equal(t, 10, cfg.LoginRateBurst)
	assert.False(t, cfg.Production())
	assert.Equal(t, "host=127.0.0.1 user=postgres password= dbname=toko port=5432 sslmode=disable", cfg.Database.GetDSN())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SECRET_KEY", "secret")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("APP_PORT", ":8081")
	t.Setenv("DB_DRIVER", "SQLITE")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("FE_URI", "http://localhost:3000")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, ":8081", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file::memory:", cfg.Database.GetDSN())
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURI)
}

func TestLoadFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SECRET_KEY=from-file\nRABBITMQ_URL=amqp://guest:guest@mq:5672/\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SECRET_KEY")
		os.Unsetenv("RABBITMQ_URL")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.SecretKey)
	assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.RabbitMQURL)
}

func TestValidate(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{
			SecretKey: "secret",
			TokenTTL:  time.Hour,
			Database:  config.Database{Driver: "postgres"},
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.SecretKey = ""
	assert.EqualError(t, cfg.Validate(), "SECRET_KEY is required")

	cfg = base()
	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Database.Driver = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.TokenTTL = 0
	assert.Error(t, cfg.Validate())
}
