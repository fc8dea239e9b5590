package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

// DashboardHTTPHandler is http handler for dashboard endpoint
type DashboardHTTPHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHTTPHandler builds new DashboardHTTPHandler
func NewDashboardHTTPHandler(dashboardSvc service.DashboardService) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{dashboardSvc: dashboardSvc}
}

// Get gets dashboard summary
// @Summary     Dashboard
// @Description Returns counters and open follow-ups due today or later, tasks are classified against UTC date
// @Tags        dashboard
// @Security	ApiKeyAuth
// @Produce     json
// @Success     200    {object} model.DashboardSummary
// @Failure     401    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/dashboard [get]
func (h *DashboardHTTPHandler) Get(c echo.Context) error {
	s, err := sessionOf(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboardSvc.Summary(c.Request().Context(), s.UserID, model.Today(time.Now()))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
