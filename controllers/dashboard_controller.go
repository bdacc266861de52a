package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/services"
	"hotel-dashboard/utils"
)

type DashboardController struct {
	StatsSvc *services.StatsService
}

func NewDashboardController(svc *services.StatsService) *DashboardController {
	return &DashboardController{StatsSvc: svc}
}

// GetStats (GET /api/dashboard/stats)
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.StatsSvc.Dashboard())
}
