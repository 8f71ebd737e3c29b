package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ExportTheatres handles GET /v1/export/theatres?min_halls=N.
func (h *CatalogHandler) ExportTheatres(c echo.Context) error {
	minHalls, err := strconv.Atoi(c.QueryParam("min_halls"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "min_halls must be an integer"})
	}
	out, err := h.Exporter.ExportTheatres(c.Request().Context(), minHalls)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "export failed"})
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(out))
}

// ExportPlays handles GET /v1/export/plays?max_rating=X.
func (h *CatalogHandler) ExportPlays(c echo.Context) error {
	maxRating, err := strconv.ParseFloat(c.QueryParam("max_rating"), 64)
	if err != nil || math.IsNaN(maxRating) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "max_rating must be a number"})
	}
	out, err := h.Exporter.ExportPlays(c.Request().Context(), maxRating)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "export failed"})
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, []byte(out))
}
