package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultsApplied() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := defaultsApplied()

	assert.Equal(t, "megui-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "filesystem", cfg.Storage.Backend)
	assert.Equal(t, 15*time.Second, cfg.Geo.CaptureTimeout)
	assert.Equal(t, 10*time.Second, cfg.Media.FetchTimeout)
	assert.Equal(t, "memory", cfg.Lock.Backend)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins, "no wildcard CORS default")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := defaultsApplied()
	require.NoError(t, cfg.validate())
}

func TestValidate_StorageBackend(t *testing.T) {
	cfg := defaultsApplied()
	cfg.Storage.Backend = "ftp"
	assert.Error(t, cfg.validate())

	cfg = defaultsApplied()
	cfg.Storage.Backend = "s3"
	assert.Error(t, cfg.validate(), "s3 backend requires a bucket")
	cfg.Storage.S3Bucket = "megui-pdfs"
	assert.NoError(t, cfg.validate())

	cfg = defaultsApplied()
	cfg.Storage.Backend = "remote"
	assert.Error(t, cfg.validate(), "remote backend requires media.base_url")
	cfg.Media.BaseURL = "https://api.example.com/api/v1"
	assert.NoError(t, cfg.validate())
}

func TestValidate_LockBackend(t *testing.T) {
	cfg := defaultsApplied()
	cfg.Lock.Backend = "zookeeper"
	assert.Error(t, cfg.validate())
}

func TestValidate_Production(t *testing.T) {
	cfg := defaultsApplied()
	cfg.App.Env = "production"
	assert.Error(t, cfg.validate(), "missing jwt secret")

	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	assert.Error(t, cfg.validate(), "missing db password")

	cfg.Database.Password = "secret"
	assert.Error(t, cfg.validate(), "sslmode disable rejected")

	cfg.Database.SSLMode = "require"
	require.NoError(t, cfg.validate())

	cfg.HTTP.CORSAllowOrigins = []string{"*"}
	assert.Error(t, cfg.validate())
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "megui",
		Password: "p@ss/word",
		DBName:   "megui",
		SSLMode:  "require",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.local:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word", "password must be escaped")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", r.Addr())
}
