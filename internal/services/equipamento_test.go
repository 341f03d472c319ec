package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/repositories"
	"sistema-ti/pkg/constants"
	apperrors "sistema-ti/pkg/errors"
)

func novoEquipamentoServiceParaTeste(t *testing.T) *EquipamentoService {
	t.Helper()
	return NewEquipamentoService(repositories.NewEquipamentoRepository(repositories.NewMemoryKVRepository(), zap.NewNop()), zap.NewNop())
}

func TestGetEquipamentosFiltraPorTipoESituacao(t *testing.T) {
	svc := novoEquipamentoServiceParaTeste(t)
	ctx := context.Background()

	todos, err := svc.GetEquipamentos(ctx, dto.FiltroEquipamentoDTO{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	pcs, err := svc.GetEquipamentos(ctx, dto.FiltroEquipamentoDTO{Tipo: "PC"})
	require.NoError(t, err)
	require.Len(t, pcs, 1)
	assert.Equal(t, "Desktop Administrativo 01", pcs[0].Nome)

	nenhum, err := svc.GetEquipamentos(ctx, dto.FiltroEquipamentoDTO{Tipo: "PC", Situacao: constants.SituacaoDescartado})
	require.NoError(t, err)
	assert.Empty(t, nenhum)
}

func TestCreateEquipamentoPropagaErroDeValidacao(t *testing.T) {
	svc := novoEquipamentoServiceParaTeste(t)

	_, err := svc.CreateEquipamento(context.Background(), dto.CreateEquipamentoDTO{
		Nome: "Sem tipo",
	})
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "tipo", validationErr.Campo)
}
