package handlers

import (
	"net/http"

	portssvc "github.com/denimfab/denim_factory_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	service portssvc.DashboardSvcFacade
}

// registerDashboardRoutes mounts the rollup views, open to any
// authenticated caller.
func registerDashboardRoutes(rg *gin.RouterGroup, service portssvc.DashboardSvcFacade) {
	h := &dashboardHandler{service: service}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.summary)
		dashboard.GET("/chart/dry-process", h.dryProcessChart)
	}
}

// summary godoc
// @Summary Dashboard summary for today
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Security BearerAuth
// @Router /api/dashboard/summary [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// dryProcessChart godoc
// @Summary Dry process chart data
// @Description Aggregated approved dry-process quantities per process over the timeframe.
// @Tags dashboard
// @Produce json
// @Param timeframe query string false "daily, weekly or monthly" default(daily)
// @Success 200 {array} domain.ProcessVolume
// @Security BearerAuth
// @Router /api/dashboard/chart/dry-process [get]
func (h *dashboardHandler) dryProcessChart(c *gin.Context) {
	volumes, err := h.service.DryProcessChart(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, volumes)
}
