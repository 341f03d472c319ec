package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sistema-ti/internal/controllers"
	"sistema-ti/internal/services"
)

func runEquipamentoRouter(secureGroup *echo.Group, equipamentoService services.EquipamentoServiceInterface, logger *zap.Logger) {
	equipamentoController := controllers.NewEquipamentoController(equipamentoService, logger)

	secureGroup.GET("/equipamentos", equipamentoController.GetEquipamentos)
	secureGroup.POST("/equipamentos", equipamentoController.CreateEquipamento)
}
