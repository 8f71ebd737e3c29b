package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/theatre-catalog/internal/config"
)

// captureWriter captures response body/status while forwarding to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.limit <= 0 || cw.size+int64(len(b)) <= cw.limit {
		cw.buf.Write(b)
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

// truncated reports whether the response outgrew the capture limit.
func (cw *captureWriter) truncated() bool {
	return cw.limit > 0 && cw.size > cw.limit
}

// ExportCache stores rendered export documents in Redis.  Every key embeds
// the current generation, read from <Prefix>:gen before the handler runs.
// Invalidate bumps the generation after each committed import, so a fill
// that started before the commit lands under a retired key and is never
// served; retired entries expire with their TTL.
type ExportCache struct {
	cfg config.CacheConfig
	rdb *redis.Client
}

// NewExportCache returns a cache; a nil client or a disabled config makes
// every operation a no-op.
func NewExportCache(cfg config.CacheConfig, rdb *redis.Client) *ExportCache {
	return &ExportCache{cfg: cfg, rdb: rdb}
}

func (x *ExportCache) enabled() bool {
	return x != nil && x.cfg.Enabled && x.rdb != nil
}

func genKey(cfg config.CacheConfig) string {
	return cfg.Prefix + ":gen"
}

// generation returns the current cache generation; a missing counter is
// generation zero.
func (x *ExportCache) generation(ctx context.Context) (int64, error) {
	gen, err := x.rdb.Get(ctx, genKey(x.cfg)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// cacheKey builds a stable key honoring prefix, generation and strategy.
func cacheKey(cfg config.CacheConfig, gen int64, route, query string) string {
	var tail string
	switch cfg.KeyStrategy {
	case "route":
		tail = "route:" + route
	default: // "route_query"
		tail = "route:" + route + ":q:" + query
	}
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%d:%x", cfg.Prefix, gen, sum[:])
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	header = make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, header, bs[8+hlen:], true
}

// Middleware serves GET requests from the cache and stores successful
// responses on a miss.
func (x *ExportCache) Middleware() echo.MiddlewareFunc {
	if !x.enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	maxBody := int64(x.cfg.MaxBodyBytes)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			gen, err := x.generation(ctx)
			if err != nil {
				log.Printf("export-cache: read generation failed: %v", err)
				return next(c)
			}
			key := cacheKey(x.cfg, gen, c.Path(), c.Request().URL.RawQuery)

			if bs, err := x.rdb.Get(ctx, key).Bytes(); err == nil {
				if status, hdr, body, ok := decodePayload(bs); ok {
					for k, vals := range hdr {
						if strings.EqualFold(k, echo.HeaderContentLength) {
							continue
						}
						for _, v := range vals {
							c.Response().Header().Add(k, v)
						}
					}
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(status, hdr.Get(echo.HeaderContentType), body)
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status != http.StatusOK || cw.truncated() {
				return nil
			}
			hdr := c.Response().Header().Clone()
			hdr.Del("X-Cache")
			if payload, err := encodePayload(cw.status, hdr, cw.buf.Bytes()); err == nil {
				if err := x.rdb.Set(context.WithoutCancel(ctx), key, payload, x.cfg.TTL).Err(); err != nil {
					log.Printf("export-cache: store %s failed: %v", key, err)
				}
			}
			return nil
		}
	}
}

// Invalidate retires every cached export by bumping the generation, then
// deletes the entries of earlier generations.
func (x *ExportCache) Invalidate(ctx context.Context) error {
	if !x.enabled() {
		return nil
	}
	gen, err := x.rdb.Incr(ctx, genKey(x.cfg)).Result()
	if err != nil {
		return fmt.Errorf("bump cache generation: %w", err)
	}
	current := fmt.Sprintf("%s:%d:", x.cfg.Prefix, gen)
	iter := x.rdb.Scan(ctx, 0, x.cfg.Prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		k := iter.Val()
		if k == genKey(x.cfg) || strings.HasPrefix(k, current) {
			continue
		}
		keys = append(keys, k)
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := x.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete cache keys: %w", err)
	}
	return nil
}
