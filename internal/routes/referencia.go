package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sistema-ti/internal/controllers"
	"sistema-ti/pkg/config"
)

func runReferenciaRouter(secureGroup *echo.Group, referencias config.Referencias, logger *zap.Logger) {
	referenciaController := controllers.NewReferenciaController(referencias, logger)

	secureGroup.GET("/referencias", referenciaController.GetReferencias)
}
