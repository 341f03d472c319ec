package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sistema-ti/pkg/config"
	"sistema-ti/pkg/constants"
	"sistema-ti/pkg/utils"
)

// ReferenciaController expõe as listas fixas usadas pelos formulários:
// escolas, técnicos, tipos de equipamento e situações.
type ReferenciaController struct {
	referencias config.Referencias
	logger      *zap.Logger
}

func NewReferenciaController(referencias config.Referencias, logger *zap.Logger) *ReferenciaController {
	return &ReferenciaController{
		referencias: referencias,
		logger:      logger,
	}
}

func (c *ReferenciaController) GetReferencias(ctx echo.Context) error {
	body := map[string]interface{}{
		"escolas":          c.referencias.Escolas,
		"tecnicos":         c.referencias.Tecnicos,
		"tiposEquipamento": constants.TiposEquipamento,
		"situacoes":        constants.Situacoes,
		"prioridades":      constants.Prioridades,
	}
	return utils.SuccessResponse(ctx, body, "Referências carregadas com sucesso", http.StatusOK)
}
