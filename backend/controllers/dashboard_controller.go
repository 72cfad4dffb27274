package controllers

import (
	"edubridge/backend/services"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// GetDashboard returns the caller's enrolled courses, progress records and
// summary stats.
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	dashboard, err := dc.Dashboard.GetDashboard(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dashboard)
}
