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

type ChamadoController struct {
	chamadoService services.ChamadoServiceInterface
	logger         *zap.Logger
}

func NewChamadoController(service services.ChamadoServiceInterface, logger *zap.Logger) *ChamadoController {
	return &ChamadoController{
		chamadoService: service,
		logger:         logger,
	}
}

func (c *ChamadoController) GetChamados(ctx echo.Context) error {
	filtro := dto.FiltroChamadoDTO{
		Escola:  ctx.QueryParam("escola"),
		Status:  ctx.QueryParam("status"),
		Tecnico: ctx.QueryParam("tecnico"),
	}

	res, err := c.chamadoService.GetChamados(ctx.Request().Context(), filtro)
	if err != nil {
		c.logger.Error("GetChamados: erro ao listar chamados", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Não foi possível listar os chamados",
				err,
				nil,
			),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "Chamados listados com sucesso", http.StatusOK)
}

func (c *ChamadoController) CreateChamado(ctx echo.Context) error {
	var payload dto.CreateChamadoDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateChamado: erro ao ler o corpo da requisição", zap.Error(err))
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
		c.logger.Error("CreateChamado: erro de validação", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.chamadoService.CreateChamado(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateChamado: erro ao registrar chamado", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Chamado registrado com sucesso", http.StatusCreated)
}

func (c *ChamadoController) GetEstatisticas(ctx echo.Context) error {
	res, err := c.chamadoService.GetEstatisticas(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetEstatisticas: erro ao calcular estatísticas de chamados", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Não foi possível calcular as estatísticas de chamados",
				err,
				nil,
			),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "Estatísticas de chamados calculadas com sucesso", http.StatusOK)
}
