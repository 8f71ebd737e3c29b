package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers liveness probes with a plain "ok".  It does not touch the
// catalog store.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
