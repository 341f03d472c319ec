package services

import (
	"context"
	"math"

	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/entities"
	"sistema-ti/internal/repositories"
)

type AvaliacaoServiceInterface interface {
	GetAvaliacoes(ctx context.Context, filtro dto.FiltroAvaliacaoDTO) ([]entities.Avaliacao, error)
	CreateAvaliacao(ctx context.Context, payload dto.CreateAvaliacaoDTO) (*entities.Avaliacao, error)
	GetEstatisticas(ctx context.Context) (*dto.AvaliacaoStatsDTO, error)
}

type AvaliacaoService struct {
	avaliacaoRepository repositories.AvaliacaoRepositoryInterface
	logger              *zap.Logger
}

func NewAvaliacaoService(avaliacaoRepository repositories.AvaliacaoRepositoryInterface, logger *zap.Logger) *AvaliacaoService {
	return &AvaliacaoService{
		avaliacaoRepository: avaliacaoRepository,
		logger:              logger,
	}
}

func (s *AvaliacaoService) GetAvaliacoes(ctx context.Context, filtro dto.FiltroAvaliacaoDTO) ([]entities.Avaliacao, error) {
	itens, err := s.avaliacaoRepository.ListAvaliacoes(ctx)
	if err != nil {
		return nil, err
	}

	filtradas := make([]entities.Avaliacao, 0, len(itens))
	for _, av := range itens {
		if matchFiltroAvaliacao(filtro, av) {
			filtradas = append(filtradas, av)
		}
	}
	return filtradas, nil
}

func (s *AvaliacaoService) CreateAvaliacao(ctx context.Context, payload dto.CreateAvaliacaoDTO) (*entities.Avaliacao, error) {
	colecao, err := s.avaliacaoRepository.AppendAvaliacao(ctx, payload)
	if err != nil {
		s.logger.Error("erro ao registrar avaliação", zap.Error(err))
		return nil, err
	}

	criada := colecao[len(colecao)-1]
	return &criada, nil
}

// GetEstatisticas resume a coleção inteira: total, média geral (1 casa),
// escolas distintas avaliadas e avaliações com nota ≤ 2.
func (s *AvaliacaoService) GetEstatisticas(ctx context.Context) (*dto.AvaliacaoStatsDTO, error) {
	itens, err := s.avaliacaoRepository.ListAvaliacoes(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.AvaliacaoStatsDTO{Total: len(itens)}

	escolas := make(map[string]struct{})
	soma := 0
	for _, av := range itens {
		soma += av.CondicoesInfraestrutura
		escolas[av.NomeEscola] = struct{}{}
		if av.CondicoesInfraestrutura <= 2 {
			stats.NecessitamMelhoria++
		}
	}
	stats.EscolasAvaliadas = len(escolas)
	if stats.Total > 0 {
		stats.MediaGeral = math.Round(float64(soma)/float64(stats.Total)*10) / 10
	}
	return stats, nil
}
