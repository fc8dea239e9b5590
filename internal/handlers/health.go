package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger checks that dependency responds
type Pinger func(ctx context.Context) error

// HealthHTTPHandler reports availability of datastores
type HealthHTTPHandler struct {
	pingers map[string]Pinger
}

// NewHealthHTTPHandler builds new HealthHTTPHandler
func NewHealthHTTPHandler(pingers map[string]Pinger) *HealthHTTPHandler {
	return &HealthHTTPHandler{pingers: pingers}
}

// Health pings every datastore
// @Summary     Health check
// @Description Pings datastores, responds with failed ones
// @Tags        health
// @Produce     json
// @Success     200    {object} map[string]string
// @Failure     503    {object} map[string]string
// @Router      /healthz [get]
func (h *HealthHTTPHandler) Health(c echo.Context) error {
	failed := make(map[string]string)
	for name, ping := range h.pingers {
		if err := ping(c.Request().Context()); err != nil {
			failed[name] = err.Error()
		}
	}

	if len(failed) > 0 {
		return c.JSON(http.StatusServiceUnavailable, failed)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
