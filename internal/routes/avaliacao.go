package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sistema-ti/internal/controllers"
	"sistema-ti/internal/services"
)

func runAvaliacaoRouter(secureGroup *echo.Group, avaliacaoService services.AvaliacaoServiceInterface, logger *zap.Logger) {
	avaliacaoController := controllers.NewAvaliacaoController(avaliacaoService, logger)

	secureGroup.GET("/avaliacoes", avaliacaoController.GetAvaliacoes)
	secureGroup.POST("/avaliacoes", avaliacaoController.CreateAvaliacao)
	secureGroup.GET("/avaliacoes/estatisticas", avaliacaoController.GetEstatisticas)
}
