package services

import (
	"context"

	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/entities"
	"sistema-ti/internal/repositories"
)

type EquipamentoServiceInterface interface {
	GetEquipamentos(ctx context.Context, filtro dto.FiltroEquipamentoDTO) ([]entities.Equipamento, error)
	CreateEquipamento(ctx context.Context, payload dto.CreateEquipamentoDTO) (*entities.Equipamento, error)
}

type EquipamentoService struct {
	equipamentoRepository repositories.EquipamentoRepositoryInterface
	logger                *zap.Logger
}

func NewEquipamentoService(equipamentoRepository repositories.EquipamentoRepositoryInterface, logger *zap.Logger) *EquipamentoService {
	return &EquipamentoService{
		equipamentoRepository: equipamentoRepository,
		logger:                logger,
	}
}

func (s *EquipamentoService) GetEquipamentos(ctx context.Context, filtro dto.FiltroEquipamentoDTO) ([]entities.Equipamento, error) {
	itens, err := s.equipamentoRepository.ListEquipamentos(ctx)
	if err != nil {
		return nil, err
	}

	filtrados := make([]entities.Equipamento, 0, len(itens))
	for _, eq := range itens {
		if matchFiltroEquipamento(filtro, eq) {
			filtrados = append(filtrados, eq)
		}
	}
	return filtrados, nil
}

func (s *EquipamentoService) CreateEquipamento(ctx context.Context, payload dto.CreateEquipamentoDTO) (*entities.Equipamento, error) {
	colecao, err := s.equipamentoRepository.AppendEquipamento(ctx, payload)
	if err != nil {
		s.logger.Error("erro ao cadastrar equipamento", zap.Error(err))
		return nil, err
	}

	criado := colecao[len(colecao)-1]
	return &criado, nil
}
