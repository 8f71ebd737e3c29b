package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theatre-catalog/internal/codec"
	"github.com/iliyamo/theatre-catalog/internal/importer"
	queue_publisher "github.com/iliyamo/theatre-catalog/internal/service"
)

// importFunc is one of the Importer entry points.
type importFunc func(ctx context.Context, doc string) (*importer.Report, error)

// ImportPlays handles POST /v1/import/plays with an XML <Plays> body.
func (h *CatalogHandler) ImportPlays(c echo.Context) error {
	return h.runImport(c, "plays", h.Importer.ImportPlays)
}

// ImportCasts handles POST /v1/import/casts with an XML <Casts> body.
func (h *CatalogHandler) ImportCasts(c echo.Context) error {
	return h.runImport(c, "casts", h.Importer.ImportCasts)
}

// ImportTheatres handles POST /v1/import/theatres with a JSON array body.
func (h *CatalogHandler) ImportTheatres(c echo.Context) error {
	return h.runImport(c, "theatres", h.Importer.ImportTheatres)
}

// runImport reads the body, runs the pipeline and answers with the plain
// text report.  Document and commit failures map to 400 and 500.
func (h *CatalogHandler) runImport(c echo.Context, family string, run importFunc) error {
	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, h.MaxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "document too large"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not read request body"})
	}

	ctx := c.Request().Context()
	report, err := run(ctx, string(body))
	switch {
	case errors.Is(err, codec.ErrMalformedDocument):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed document"})
	case errors.Is(err, importer.ErrCommitFailed):
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "import could not be committed"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "import failed"})
	}

	if err := h.Cache.Invalidate(ctx); err != nil {
		log.Printf("import: cache invalidation failed: %v", err)
	}
	ev := queue_publisher.NewImportCompletedEvent(family, report.Accepted(), report.Rejected(), time.Now())
	if h.Publisher != nil {
		pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		if err := h.Publisher.PublishImportCompleted(pctx, ev); err != nil {
			log.Printf("import: publish %s event failed: %v", family, err)
		}
		cancel()
	}
	c.Response().Header().Set("X-Import-Batch", ev.BatchID)
	return c.String(http.StatusOK, report.String())
}
