package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sistema-ti/internal/controllers"
	"sistema-ti/internal/services"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, logger *zap.Logger) {
	authController := controllers.NewAuthController(authService, logger)

	api.POST("/auth/login", authController.Login)
}
