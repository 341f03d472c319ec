package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/repositories"
	"sistema-ti/pkg/constants"
)

type DashboardServiceInterface interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

// DashboardService calcula as contagens da visão geral sobre as coleções
// completas, sem nenhum filtro. Coleções vazias produzem zeros.
type DashboardService struct {
	equipamentoRepository repositories.EquipamentoRepositoryInterface
	chamadoRepository     repositories.ChamadoRepositoryInterface
	escolas               []string
	logger                *zap.Logger
	now                   func() time.Time
}

func NewDashboardService(
	equipamentoRepository repositories.EquipamentoRepositoryInterface,
	chamadoRepository repositories.ChamadoRepositoryInterface,
	escolas []string,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		equipamentoRepository: equipamentoRepository,
		chamadoRepository:     chamadoRepository,
		escolas:               escolas,
		logger:                logger,
		now:                   time.Now,
	}
}

func (s *DashboardService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	equipamentos, err := s.equipamentoRepository.ListEquipamentos(ctx)
	if err != nil {
		return nil, err
	}
	chamados, err := s.chamadoRepository.ListChamados(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{}

	stats.Equipamentos.Total = len(equipamentos)
	for _, eq := range equipamentos {
		switch eq.Situacao {
		case constants.SituacaoEmUso:
			stats.Equipamentos.EmUso++
		case constants.SituacaoDisponivel:
			stats.Equipamentos.Disponiveis++
		case constants.SituacaoManutencao:
			stats.Equipamentos.Manutencao++
		case constants.SituacaoDescartado:
			stats.Equipamentos.Descartados++
		}
	}

	agora := s.now()
	anoHoje, semanaHoje := agora.ISOWeek()
	porEscola := make(map[string]int)

	for _, ch := range chamados {
		porEscola[ch.Escola]++

		data, err := time.Parse("2006-01-02", ch.DataAtendimento)
		if err != nil {
			continue
		}
		if data.Year() == agora.Year() && data.YearDay() == agora.YearDay() {
			stats.Chamados.Hoje++
		}
		if ano, semana := data.ISOWeek(); ano == anoHoje && semana == semanaHoje {
			stats.Chamados.EstaSemana++
		}
		if data.Month() == agora.Month() && data.Year() == agora.Year() {
			stats.Chamados.EsteMes++
		}
	}

	// A lista de escolas exibida é fixa (configuração), na ordem configurada.
	stats.ChamadosPorEscola = make([]dto.DashboardEscolaDTO, 0, len(s.escolas))
	for _, escola := range s.escolas {
		stats.ChamadosPorEscola = append(stats.ChamadosPorEscola, dto.DashboardEscolaDTO{
			Escola:   escola,
			Chamados: porEscola[escola],
		})
	}

	return stats, nil
}
