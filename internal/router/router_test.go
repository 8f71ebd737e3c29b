package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/theatre-catalog/internal/config"
	"github.com/iliyamo/theatre-catalog/internal/exporter"
	"github.com/iliyamo/theatre-catalog/internal/handler"
	"github.com/iliyamo/theatre-catalog/internal/importer"
	"github.com/iliyamo/theatre-catalog/internal/middleware"
	"github.com/iliyamo/theatre-catalog/internal/repository"
)

func TestRoutesAreRegistered(t *testing.T) {
	store := repository.NewMemoryStore()
	cache := middleware.NewExportCache(config.CacheConfig{}, nil)
	h := handler.NewCatalogHandler(importer.New(store), exporter.New(store), cache, nil, 0)

	e := echo.New()
	RegisterRoutes(e)
	RegisterCatalog(e, h, cache.Middleware())

	cases := []struct {
		method, target, body string
		want                 int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodPost, "/v1/import/plays", "<Plays></Plays>", http.StatusOK},
		{http.MethodPost, "/v1/import/casts", "<Casts></Casts>", http.StatusOK},
		{http.MethodPost, "/v1/import/theatres", "[]", http.StatusOK},
		{http.MethodGet, "/v1/export/theatres?min_halls=1", "", http.StatusOK},
		{http.MethodGet, "/v1/export/plays?max_rating=10", "", http.StatusOK},
		{http.MethodGet, "/v1/export/casts", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body)))
		assert.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.target)
	}
}
