package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/straydog-api/internal/application/analytics"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/pkg/response"
)

// DashboardHandler serves the admin dashboard endpoints.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats returns the platform counters.
// GET /api/dashboard/stats
//
// Reports by status, adoptions, completed donation totals and volunteers,
// all read concurrently.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(response.OK("Dashboard stats retrieved", stats))
}

// Activity returns the latest reports, listings and completed donations merged by date.
// GET /api/dashboard/activity?limit=10
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	items, err := h.uc.Activity(c.UserContext(), c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return c.JSON(response.OK("Recent activity retrieved", items))
}

// ReportChart returns reports per day.
// GET /api/dashboard/charts/reports?period=7days|30days
//
// Days without reports are absent from the series.
func (h *DashboardHandler) ReportChart(c *fiber.Ctx) error {
	points, err := h.uc.ReportChart(c.UserContext(), c.Query("period"))
	if errors.Is(err, domain.ErrInvalidInput) {
		return fiber.NewError(fiber.StatusBadRequest, "Period must be 7days or 30days")
	}
	if err != nil {
		return err
	}
	return c.JSON(response.OK("Chart data retrieved", points))
}
