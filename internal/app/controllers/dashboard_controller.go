package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/services"
	"github.com/sandesh/institutecrm/internal/middleware"
)

// DashboardController serves the landing dashboard aggregates
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Stats returns headline numbers and recent activity
// @Summary Dashboard statistics
// @Description Returns totals, today's counts and recent activity, scoped to the caller's visibility
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats}
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	sub, ok := requireSubject(ctx)
	if !ok {
		return
	}

	stats, err := c.dashboardService.Stats(ctx, sub)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}
