package config

import (
	"strings"
	"time"
)

// CacheConfig defines settings for the export response cache.  When Enabled
// is false or no Redis client is configured, caching is disabled.  Prefix
// namespaces the keys so that an import can drop every cached export at
// once.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	KeyStrategy  string
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          parseDur(envStr("CACHE_TTL", "5m")),
		KeyStrategy:  strings.ToLower(envStr("CACHE_KEY_STRATEGY", "route_query")),
		Prefix:       envStr("CACHE_PREFIX", "theatre:export"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1048576),
	}
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Minute
	}
	return d
}
