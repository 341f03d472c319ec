package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sistema-ti/internal/repositories"
	"sistema-ti/pkg/constants"
)

var escolasDeTeste = []string{
	"Escola Municipal Santos",
	"Escola Estadual Silva",
	"Colégio Central",
	"Escola Rural Norte",
	"Instituto Tecnológico",
}

func novoDashboardServiceParaTeste(t *testing.T, kv repositories.KVStoreInterface) *DashboardService {
	t.Helper()
	logger := zap.NewNop()
	return NewDashboardService(
		repositories.NewEquipamentoRepository(kv, logger),
		repositories.NewChamadoRepository(kv, logger),
		escolasDeTeste,
		logger,
	)
}

func TestDashboardContaSituacoesEChamadosPorCalendario(t *testing.T) {
	svc := novoDashboardServiceParaTeste(t, repositories.NewMemoryKVRepository())
	// As sementes têm atendimentos em 2024-01-15 e 2024-01-16.
	svc.now = func() time.Time {
		return time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	}

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Equipamentos.Total)
	assert.Equal(t, 2, stats.Equipamentos.EmUso)
	assert.Zero(t, stats.Equipamentos.Disponiveis)
	assert.Zero(t, stats.Equipamentos.Manutencao)
	assert.Zero(t, stats.Equipamentos.Descartados)

	assert.Equal(t, 1, stats.Chamados.Hoje)
	assert.Equal(t, 2, stats.Chamados.EstaSemana)
	assert.Equal(t, 2, stats.Chamados.EsteMes)
}

func TestDashboardListaTodasAsEscolasConfiguradas(t *testing.T) {
	svc := novoDashboardServiceParaTeste(t, repositories.NewMemoryKVRepository())

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.ChamadosPorEscola, len(escolasDeTeste))
	porEscola := make(map[string]int)
	for i, item := range stats.ChamadosPorEscola {
		assert.Equal(t, escolasDeTeste[i], item.Escola)
		porEscola[item.Escola] = item.Chamados
	}
	assert.Equal(t, 1, porEscola["Escola Municipal Santos"])
	assert.Equal(t, 1, porEscola["Colégio Central"])
	assert.Zero(t, porEscola["Escola Rural Norte"])
}

func TestDashboardComColecoesVaziasProduzZeros(t *testing.T) {
	kv := repositories.NewMemoryKVRepository()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, constants.StorageKeyEquipamentos, "[]"))
	require.NoError(t, kv.Set(ctx, constants.StorageKeyChamados, "[]"))

	svc := novoDashboardServiceParaTeste(t, kv)
	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Zero(t, stats.Equipamentos.Total)
	assert.Zero(t, stats.Chamados.Hoje)
	assert.Zero(t, stats.Chamados.EstaSemana)
	assert.Zero(t, stats.Chamados.EsteMes)
	for _, item := range stats.ChamadosPorEscola {
		assert.Zero(t, item.Chamados)
	}
}
