package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/services"
	apperrors "sistema-ti/pkg/errors"
	"sistema-ti/pkg/utils"
)

type EquipamentoController struct {
	equipamentoService services.EquipamentoServiceInterface
	logger             *zap.Logger
}

func NewEquipamentoController(service services.EquipamentoServiceInterface, logger *zap.Logger) *EquipamentoController {
	return &EquipamentoController{
		equipamentoService: service,
		logger:             logger,
	}
}

func (c *EquipamentoController) GetEquipamentos(ctx echo.Context) error {
	filtro := dto.FiltroEquipamentoDTO{
		Tipo:     ctx.QueryParam("tipo"),
		Situacao: ctx.QueryParam("situacao"),
		Local:    ctx.QueryParam("local"),
	}

	res, err := c.equipamentoService.GetEquipamentos(ctx.Request().Context(), filtro)
	if err != nil {
		c.logger.Error("GetEquipamentos: erro ao listar equipamentos", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Não foi possível listar os equipamentos",
				err,
				nil,
			),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "Equipamentos listados com sucesso", http.StatusOK)
}

func (c *EquipamentoController) CreateEquipamento(ctx echo.Context) error {
	var payload dto.CreateEquipamentoDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateEquipamento: erro ao ler o corpo da requisição", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Formato de dados inválido no corpo da requisição",
				err,
				nil,
			),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CreateEquipamento: erro de validação", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipamentoService.CreateEquipamento(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateEquipamento: erro ao cadastrar equipamento", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipamento cadastrado com sucesso", http.StatusCreated)
}
