package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theatre-catalog/internal/config"
)

func TestCacheKeyStrategies(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "theatre:export", KeyStrategy: "route_query"}
	a := cacheKey(cfg, 0, "/v1/export/theatres", "min_halls=2")
	b := cacheKey(cfg, 0, "/v1/export/theatres", "min_halls=3")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "theatre:export:0:"))

	cfg.KeyStrategy = "route"
	assert.Equal(t, cacheKey(cfg, 0, "/v1/export/theatres", "min_halls=2"), cacheKey(cfg, 0, "/v1/export/theatres", "min_halls=3"))
}

func TestCacheKeyChangesWithGeneration(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "theatre:export", KeyStrategy: "route_query"}
	before := cacheKey(cfg, 3, "/v1/export/plays", "max_rating=5")
	after := cacheKey(cfg, 4, "/v1/export/plays", "max_rating=5")
	assert.NotEqual(t, before, after)
	assert.True(t, strings.HasPrefix(after, "theatre:export:4:"))
	assert.NotEqual(t, genKey(cfg), before)
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/xml"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte("<Plays></Plays>"))
	require.NoError(t, err)

	status, got, body, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/xml", got.Get("Content-Type"))
	assert.Equal(t, "<Plays></Plays>", string(body))

	_, _, _, ok = decodePayload(bs[:6])
	assert.False(t, ok)
}

func TestDisabledCacheIsPassThrough(t *testing.T) {
	x := NewExportCache(config.CacheConfig{Enabled: true}, nil)
	e := echo.New()
	e.GET("/v1/export/plays", func(c echo.Context) error {
		return c.String(http.StatusOK, "fresh")
	}, x.Middleware())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/export/plays", nil))
	assert.Equal(t, "fresh", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Cache"))
	assert.NoError(t, x.Invalidate(context.Background()))
}

func TestCaptureWriterLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}
	_, _ = cw.Write([]byte("abc"))
	assert.False(t, cw.truncated())
	_, _ = cw.Write([]byte("de"))
	assert.True(t, cw.truncated())
	assert.Equal(t, "abcde", rec.Body.String())
}
