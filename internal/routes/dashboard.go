package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sistema-ti/internal/controllers"
	"sistema-ti/internal/services"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardService services.DashboardServiceInterface, logger *zap.Logger) {
	dashboardController := controllers.NewDashboardController(dashboardService, logger)

	secureGroup.GET("/dashboard", dashboardController.GetStats)
}
