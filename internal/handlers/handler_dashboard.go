package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := &dashboardHandler{dashboardService: dashboardService}

	dashboard := rg.Group("/dashboard", middleware.RequireRoles(dashboardRoles...))
	{
		dashboard.GET("/stats", h.getStats)
	}
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Document counts, recent activity, daily registrations and approval rates per department.
// @Description Sub-aggregates that fail are reported as zero or empty.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	respondWithData(c, http.StatusOK, h.dashboardService.GetStats(c.Request.Context()))
}
