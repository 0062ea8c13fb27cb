package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlexanderJohnD/WealthWise/internal/aggregation"
	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/format"
	"github.com/AlexanderJohnD/WealthWise/internal/services"
)

// DashboardHandler serves the aggregated dashboard.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardResponse carries the raw figures and their display text.
type DashboardResponse struct {
	Metrics aggregation.Summary  `json:"metrics"`
	Display format.DashboardView `json:"display"`
}

// GetDashboard handles computing the dashboard.
// @Summary     Get dashboard
// @Description Net worth, monthly cash flow, savings rate, portfolio and goal progress
// @Tags        dashboard
// @Produce     json
// @Param       X-Owner-ID header int    false "Owner ID (default 1)"
// @Param       as_of      query  string false "Evaluation instant, RFC 3339 (default now)"
// @Success     200 {object} DashboardResponse "Dashboard"
// @Failure     400 {object} ErrorResponse     "Invalid input"
// @Failure     500 {object} ErrorResponse     "Storage error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		asOf, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			_ = c.Error(apperrors.Validation("as_of must be an RFC 3339 timestamp"))
			return
		}
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), ownerID, asOf)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Metrics: *summary,
		Display: format.Dashboard(*summary),
	})
}
