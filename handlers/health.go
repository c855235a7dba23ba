package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports that the process is serving requests
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
