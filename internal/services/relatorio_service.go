package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/entities"
	"sistema-ti/internal/repositories"
	apperrors "sistema-ti/pkg/errors"
)

const (
	previaEquipamentos = 10
	previaChamados     = 10
	previaAvaliacoes   = 6
)

type RelatorioServiceInterface interface {
	GerarRelatorio(ctx context.Context, filtros entities.FiltrosRelatorio) (*dto.RelatorioDTO, error)
	ExportarJSON(ctx context.Context, filtros entities.FiltrosRelatorio) ([]byte, string, error)
}

// RelatorioService cruza as três coleções sob o mesmo registro de critérios.
// Cada coleção consulta apenas as dimensões que possui: escola restringe as
// três, tipo/situação só equipamentos, técnico só chamados e avaliações, e o
// período só chamados. Não há resolução de chave estrangeira em lugar nenhum.
type RelatorioService struct {
	equipamentoRepository repositories.EquipamentoRepositoryInterface
	chamadoRepository     repositories.ChamadoRepositoryInterface
	avaliacaoRepository   repositories.AvaliacaoRepositoryInterface
	logger                *zap.Logger
	now                   func() time.Time
}

func NewRelatorioService(
	equipamentoRepository repositories.EquipamentoRepositoryInterface,
	chamadoRepository repositories.ChamadoRepositoryInterface,
	avaliacaoRepository repositories.AvaliacaoRepositoryInterface,
	logger *zap.Logger,
) *RelatorioService {
	return &RelatorioService{
		equipamentoRepository: equipamentoRepository,
		chamadoRepository:     chamadoRepository,
		avaliacaoRepository:   avaliacaoRepository,
		logger:                logger,
		now:                   time.Now,
	}
}

func (s *RelatorioService) GerarRelatorio(ctx context.Context, filtros entities.FiltrosRelatorio) (*dto.RelatorioDTO, error) {
	equipamentos, err := s.equipamentoRepository.ListEquipamentos(ctx)
	if err != nil {
		return nil, err
	}
	chamados, err := s.chamadoRepository.ListChamados(ctx)
	if err != nil {
		return nil, err
	}
	avaliacoes, err := s.avaliacaoRepository.ListAvaliacoes(ctx)
	if err != nil {
		return nil, err
	}

	resultados := FiltrarResultados(filtros, equipamentos, chamados, avaliacoes)
	return &dto.RelatorioDTO{
		Filtros:    filtros,
		Resultados: resultados,
		Resumo:     Resumir(resultados),
		Previa:     montarPrevia(resultados),
	}, nil
}

// ExportarJSON gera o snapshot e devolve os bytes junto do nome do arquivo
// de download (relatorio-ti-<AAAA-MM-DD>.json).
func (s *RelatorioService) ExportarJSON(ctx context.Context, filtros entities.FiltrosRelatorio) ([]byte, string, error) {
	relatorio, err := s.GerarRelatorio(ctx, filtros)
	if err != nil {
		return nil, "", err
	}

	agora := s.now()
	snapshot := entities.SnapshotRelatorio{
		Filtros:     filtros,
		DataGeracao: agora.Format(time.RFC3339),
		Resultados:  relatorio.Resultados,
		Resumo:      relatorio.Resumo,
	}

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		s.logger.Error("falha ao serializar o snapshot do relatório", zap.Error(err))
		return nil, "", apperrors.NewSerializationError(err)
	}

	nomeArquivo := fmt.Sprintf("relatorio-ti-%s.json", agora.Format("2006-01-02"))
	return raw, nomeArquivo, nil
}

// FiltrarResultados aplica o predicado de cada coleção preservando a ordem
// original dos registros. É uma função pura das entradas: os mesmos critérios
// sobre as mesmas coleções produzem sempre o mesmo resultado.
func FiltrarResultados(
	filtros entities.FiltrosRelatorio,
	equipamentos []entities.Equipamento,
	chamados []entities.Chamado,
	avaliacoes []entities.Avaliacao,
) entities.ResultadosRelatorio {
	resultados := entities.ResultadosRelatorio{
		Equipamentos: make([]entities.Equipamento, 0, len(equipamentos)),
		Chamados:     make([]entities.Chamado, 0, len(chamados)),
		Avaliacoes:   make([]entities.Avaliacao, 0, len(avaliacoes)),
	}

	for _, eq := range equipamentos {
		if matchEquipamentoRelatorio(filtros, eq) {
			resultados.Equipamentos = append(resultados.Equipamentos, eq)
		}
	}
	for _, ch := range chamados {
		if matchChamadoRelatorio(filtros, ch) {
			resultados.Chamados = append(resultados.Chamados, ch)
		}
	}
	for _, av := range avaliacoes {
		if matchAvaliacaoRelatorio(filtros, av) {
			resultados.Avaliacoes = append(resultados.Avaliacoes, av)
		}
	}
	return resultados
}

// Resumir conta cada subconjunto filtrado. Nunca falha.
func Resumir(resultados entities.ResultadosRelatorio) entities.ResumoRelatorio {
	return entities.ResumoRelatorio{
		TotalEquipamentos: len(resultados.Equipamentos),
		TotalChamados:     len(resultados.Chamados),
		TotalAvaliacoes:   len(resultados.Avaliacoes),
	}
}

func montarPrevia(resultados entities.ResultadosRelatorio) dto.RelatorioPreviaDTO {
	previa := dto.RelatorioPreviaDTO{
		Equipamentos: limitarEquipamentos(resultados.Equipamentos, previaEquipamentos),
		Chamados:     limitarChamados(resultados.Chamados, previaChamados),
		Avaliacoes:   limitarAvaliacoes(resultados.Avaliacoes, previaAvaliacoes),
	}
	previa.MaisEquipamentos = len(resultados.Equipamentos) - len(previa.Equipamentos)
	previa.MaisChamados = len(resultados.Chamados) - len(previa.Chamados)
	previa.MaisAvaliacoes = len(resultados.Avaliacoes) - len(previa.Avaliacoes)
	return previa
}

func limitarEquipamentos(itens []entities.Equipamento, limite int) []entities.Equipamento {
	if len(itens) <= limite {
		return itens
	}
	return itens[:limite]
}

func limitarChamados(itens []entities.Chamado, limite int) []entities.Chamado {
	if len(itens) <= limite {
		return itens
	}
	return itens[:limite]
}

func limitarAvaliacoes(itens []entities.Avaliacao, limite int) []entities.Avaliacao {
	if len(itens) <= limite {
		return itens
	}
	return itens[:limite]
}
