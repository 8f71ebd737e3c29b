package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
	for _, k := range []string{"CACHE_ENABLED", "CACHE_TTL", "CACHE_KEY_STRATEGY", "CACHE_PREFIX", "CACHE_MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
	assert.Equal(t, "route_query", cfg.KeyStrategy)
	assert.Equal(t, "theatre:export", cfg.Prefix)
	assert.Equal(t, 1048576, cfg.MaxBodyBytes)
}

func TestLoadCacheConfigOverrides(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "off")
	t.Setenv("CACHE_TTL", "bogus")
	t.Setenv("CACHE_KEY_STRATEGY", "ROUTE")
	cfg := LoadCacheConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, time.Minute, cfg.TTL)
	assert.Equal(t, "route", cfg.KeyStrategy)
}

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "theatre")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "theatre")
	t.Setenv("MAX_IMPORT_BYTES", "2048")
	t.Setenv("QUEUE_ENABLED", "true")
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://broker:5672/")
	t.Setenv("EVENT_LOG_DIR", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(2048), cfg.MaxImportBytes)
	assert.True(t, cfg.QueueEnabled)
	assert.Equal(t, "amqp://broker:5672/", cfg.RabbitURL)
	assert.Equal(t, "logs", cfg.EventLogDir)
}

func TestRedisOptions(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_TLS", "1")
	opts := RedisOptions()
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 3, opts.DB)
	assert.NotNil(t, opts.TLSConfig)

	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("REDIS_TLS", "")
	opts = RedisOptions()
	assert.Equal(t, "redis:6379", opts.Addr)
	assert.Nil(t, opts.TLSConfig)
}
