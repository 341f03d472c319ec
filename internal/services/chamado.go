package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/entities"
	"sistema-ti/internal/repositories"
	"sistema-ti/pkg/constants"
)

type ChamadoServiceInterface interface {
	GetChamados(ctx context.Context, filtro dto.FiltroChamadoDTO) ([]entities.Chamado, error)
	CreateChamado(ctx context.Context, payload dto.CreateChamadoDTO) (*entities.Chamado, error)
	GetEstatisticas(ctx context.Context) (*dto.ChamadoStatsDTO, error)
}

type ChamadoService struct {
	chamadoRepository repositories.ChamadoRepositoryInterface
	logger            *zap.Logger
	now               func() time.Time
}

func NewChamadoService(chamadoRepository repositories.ChamadoRepositoryInterface, logger *zap.Logger) *ChamadoService {
	return &ChamadoService{
		chamadoRepository: chamadoRepository,
		logger:            logger,
		now:               time.Now,
	}
}

func (s *ChamadoService) GetChamados(ctx context.Context, filtro dto.FiltroChamadoDTO) ([]entities.Chamado, error) {
	itens, err := s.chamadoRepository.ListChamados(ctx)
	if err != nil {
		return nil, err
	}

	filtrados := make([]entities.Chamado, 0, len(itens))
	for _, ch := range itens {
		if matchFiltroChamado(filtro, ch) {
			filtrados = append(filtrados, ch)
		}
	}
	return filtrados, nil
}

func (s *ChamadoService) CreateChamado(ctx context.Context, payload dto.CreateChamadoDTO) (*entities.Chamado, error) {
	colecao, err := s.chamadoRepository.AppendChamado(ctx, payload)
	if err != nil {
		s.logger.Error("erro ao registrar chamado", zap.Error(err))
		return nil, err
	}

	criado := colecao[len(colecao)-1]
	return &criado, nil
}

// GetEstatisticas monta os cartões da tela de chamados sobre a coleção inteira.
func (s *ChamadoService) GetEstatisticas(ctx context.Context) (*dto.ChamadoStatsDTO, error) {
	itens, err := s.chamadoRepository.ListChamados(ctx)
	if err != nil {
		return nil, err
	}

	agora := s.now()
	stats := &dto.ChamadoStatsDTO{Total: len(itens)}
	for _, ch := range itens {
		if ch.Prioridade == constants.PrioridadeAlta {
			stats.AltaPrioridade++
		}
		if ch.Status == constants.StatusConcluido {
			stats.Concluidos++
		}
		if data, err := time.Parse("2006-01-02", ch.DataAtendimento); err == nil {
			if data.Month() == agora.Month() && data.Year() == agora.Year() {
				stats.EsteMes++
			}
		}
	}
	return stats, nil
}
