package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sistema-ti/internal/controllers"
	"sistema-ti/internal/services"
)

func runRelatorioRouter(secureGroup *echo.Group, relatorioService services.RelatorioServiceInterface, logger *zap.Logger) {
	relatorioController := controllers.NewRelatorioController(relatorioService, logger)

	secureGroup.GET("/relatorios", relatorioController.GetRelatorio)
	secureGroup.GET("/relatorios/exportar", relatorioController.ExportarRelatorio)
}
