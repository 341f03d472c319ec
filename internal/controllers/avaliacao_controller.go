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

type AvaliacaoController struct {
	avaliacaoService services.AvaliacaoServiceInterface
	logger           *zap.Logger
}

func NewAvaliacaoController(service services.AvaliacaoServiceInterface, logger *zap.Logger) *AvaliacaoController {
	return &AvaliacaoController{
		avaliacaoService: service,
		logger:           logger,
	}
}

func (c *AvaliacaoController) GetAvaliacoes(ctx echo.Context) error {
	filtro := dto.FiltroAvaliacaoDTO{
		Escola:  ctx.QueryParam("escola"),
		Tecnico: ctx.QueryParam("tecnico"),
		Nota:    ctx.QueryParam("nota"),
	}

	res, err := c.avaliacaoService.GetAvaliacoes(ctx.Request().Context(), filtro)
	if err != nil {
		c.logger.Error("GetAvaliacoes: erro ao listar avaliações", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Não foi possível listar as avaliações",
				err,
				nil,
			),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "Avaliações listadas com sucesso", http.StatusOK)
}

func (c *AvaliacaoController) CreateAvaliacao(ctx echo.Context) error {
	var payload dto.CreateAvaliacaoDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateAvaliacao: erro ao ler o corpo da requisição", zap.Error(err))
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
		c.logger.Error("CreateAvaliacao: erro de validação", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.avaliacaoService.CreateAvaliacao(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateAvaliacao: erro ao registrar avaliação", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Avaliação registrada com sucesso", http.StatusCreated)
}

func (c *AvaliacaoController) GetEstatisticas(ctx echo.Context) error {
	res, err := c.avaliacaoService.GetEstatisticas(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetEstatisticas: erro ao calcular estatísticas de avaliações", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Não foi possível calcular as estatísticas de avaliações",
				err,
				nil,
			),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "Estatísticas de avaliações calculadas com sucesso", http.StatusOK)
}
