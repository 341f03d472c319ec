package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sistema-ti/internal/controllers"
	"sistema-ti/internal/services"
)

func runChamadoRouter(secureGroup *echo.Group, chamadoService services.ChamadoServiceInterface, logger *zap.Logger) {
	chamadoController := controllers.NewChamadoController(chamadoService, logger)

	secureGroup.GET("/chamados", chamadoController.GetChamados)
	secureGroup.POST("/chamados", chamadoController.CreateChamado)
	secureGroup.GET("/chamados/estatisticas", chamadoController.GetEstatisticas)
}
