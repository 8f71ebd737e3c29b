package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework handles routing

	"github.com/iliyamo/theatre-catalog/internal/handler" // handlers that run the import/export pipelines
)

// RegisterRoutes registers the health check used by load balancers and
// monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the import and export endpoints.  Imports live
// under /v1/import and take the raw document as the request body.  Exports
// live under /v1/export and are wrapped by exportCache, which serves
// repeated requests from Redis until the next committed import.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, exportCache echo.MiddlewareFunc) {
	imp := e.Group("/v1/import")
	imp.POST("/plays", h.ImportPlays)
	imp.POST("/casts", h.ImportCasts)
	imp.POST("/theatres", h.ImportTheatres)

	exp := e.Group("/v1/export", exportCache)
	exp.GET("/theatres", h.ExportTheatres)
	exp.GET("/plays", h.ExportPlays)
}
