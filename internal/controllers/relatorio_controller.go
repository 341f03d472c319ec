package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"sistema-ti/internal/entities"
	"sistema-ti/internal/services"
	apperrors "sistema-ti/pkg/errors"
	"sistema-ti/pkg/utils"
)

type RelatorioController struct {
	relatorioService services.RelatorioServiceInterface
	logger           *zap.Logger
}

func NewRelatorioController(service services.RelatorioServiceInterface, logger *zap.Logger) *RelatorioController {
	return &RelatorioController{
		relatorioService: service,
		logger:           logger,
	}
}

func (c *RelatorioController) GetRelatorio(ctx echo.Context) error {
	filtros := c.parseFiltros(ctx)
	c.logger.Debug("relatório solicitado", zap.Any("filtros", filtros))

	res, err := c.relatorioService.GerarRelatorio(ctx.Request().Context(), filtros)
	if err != nil {
		c.logger.Error("GetRelatorio: erro ao gerar relatório", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Não foi possível gerar o relatório",
				err,
				nil,
			),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "Relatório gerado com sucesso", http.StatusOK)
}

// ExportarRelatorio devolve o snapshot como download. O formato padrão é o
// arquivo JSON; ?format=xlsx troca para planilha.
func (c *RelatorioController) ExportarRelatorio(ctx echo.Context) error {
	filtros := c.parseFiltros(ctx)
	format := strings.ToLower(ctx.QueryParam("format"))

	if format == "xlsx" {
		res, err := c.relatorioService.GerarRelatorio(ctx.Request().Context(), filtros)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return c.respondWithXLSX(ctx, res.Resultados)
	}

	raw, nomeArquivo, err := c.relatorioService.ExportarJSON(ctx.Request().Context(), filtros)
	if err != nil {
		c.logger.Error("ExportarRelatorio: erro ao exportar relatório", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+nomeArquivo)
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, raw)
}

func (c *RelatorioController) parseFiltros(ctx echo.Context) entities.FiltrosRelatorio {
	return entities.FiltrosRelatorio{
		Escola:              ctx.QueryParam("escola"),
		TipoEquipamento:     ctx.QueryParam("tipoEquipamento"),
		SituacaoEquipamento: ctx.QueryParam("situacaoEquipamento"),
		DataInicio:          ctx.QueryParam("dataInicio"),
		DataFim:             ctx.QueryParam("dataFim"),
		Tecnico:             ctx.QueryParam("tecnico"),
	}
}

var (
	cabecalhoEquipamentos = []string{"Nome", "Tipo", "Modelo", "Patrimônio", "Local", "Situação", "Data de Inclusão"}
	cabecalhoChamados     = []string{"Escola", "Data", "Problema Relatado", "Solução Aplicada", "Técnico", "Equipamento", "Prioridade", "Status"}
	cabecalhoAvaliacoes   = []string{"Escola", "Data da Visita", "Condições", "Observações", "Recomendações", "Técnico"}
)

func (c *RelatorioController) respondWithXLSX(ctx echo.Context, resultados entities.ResultadosRelatorio) error {
	f := excelize.NewFile()
	negrito, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	abaEquipamentos := "Equipamentos"
	f.SetSheetName("Sheet1", abaEquipamentos)
	f.SetSheetRow(abaEquipamentos, "A1", &cabecalhoEquipamentos)
	f.SetCellStyle(abaEquipamentos, "A1", "G1", negrito)
	for i, eq := range resultados.Equipamentos {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{eq.Nome, eq.Tipo, eq.Modelo, eq.Patrimonio, eq.Local, eq.Situacao, eq.DataInclusao}
		f.SetSheetRow(abaEquipamentos, cell, &row)
	}

	abaChamados := "Chamados"
	f.NewSheet(abaChamados)
	f.SetSheetRow(abaChamados, "A1", &cabecalhoChamados)
	f.SetCellStyle(abaChamados, "A1", "H1", negrito)
	for i, ch := range resultados.Chamados {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{ch.Escola, ch.DataAtendimento, ch.ProblemaRelatado, ch.SolucaoAplicada, ch.TecnicoResponsavel, ch.EquipamentoRelacionado, ch.Prioridade, ch.Status}
		f.SetSheetRow(abaChamados, cell, &row)
	}

	abaAvaliacoes := "Avaliações"
	f.NewSheet(abaAvaliacoes)
	f.SetSheetRow(abaAvaliacoes, "A1", &cabecalhoAvaliacoes)
	f.SetCellStyle(abaAvaliacoes, "A1", "F1", negrito)
	for i, av := range resultados.Avaliacoes {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{av.NomeEscola, av.DataVisita, av.NotaTexto(), av.Observacoes, av.RecomendacoesMelhorias, av.TecnicoResponsavel}
		f.SetSheetRow(abaAvaliacoes, cell, &row)
	}

	nomeArquivo := fmt.Sprintf("relatorio-ti-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+nomeArquivo)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
