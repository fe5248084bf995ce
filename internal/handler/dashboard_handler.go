package handler

import (
	"net/http"

	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/service"
	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard).Name = RouteDashboard
}

func (h *DashboardHandler) Dashboard(c echo.Context) error {
	stat := filter.ParseStatType(c.QueryParam("stat_type"))

	d, err := h.svc.BuildDashboard(c.Request().Context(), stat)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "dashboard.html", d)
}
