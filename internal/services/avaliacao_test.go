package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/repositories"
)

func novoAvaliacaoServiceParaTeste(t *testing.T) *AvaliacaoService {
	t.Helper()
	return NewAvaliacaoService(repositories.NewAvaliacaoRepository(repositories.NewMemoryKVRepository(), zap.NewNop()), zap.NewNop())
}

func TestGetAvaliacoesFiltraPorNotaExata(t *testing.T) {
	svc := novoAvaliacaoServiceParaTeste(t)
	ctx := context.Background()

	boas, err := svc.GetAvaliacoes(ctx, dto.FiltroAvaliacaoDTO{Nota: "4"})
	require.NoError(t, err)
	require.Len(t, boas, 1)
	assert.Equal(t, "Escola Municipal Santos", boas[0].NomeEscola)

	nenhuma, err := svc.GetAvaliacoes(ctx, dto.FiltroAvaliacaoDTO{Nota: "5"})
	require.NoError(t, err)
	assert.Empty(t, nenhuma)

	invalida, err := svc.GetAvaliacoes(ctx, dto.FiltroAvaliacaoDTO{Nota: "ótima"})
	require.NoError(t, err)
	assert.Empty(t, invalida)
}

func TestEstatisticasDeAvaliacoes(t *testing.T) {
	svc := novoAvaliacaoServiceParaTeste(t)
	ctx := context.Background()

	stats, err := svc.GetEstatisticas(ctx)
	require.NoError(t, err)

	// Sementes: notas 4 e 3 em duas escolas distintas.
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 3.5, stats.MediaGeral)
	assert.Equal(t, 2, stats.EscolasAvaliadas)
	assert.Zero(t, stats.NecessitamMelhoria)
}

func TestEstatisticasContamNotaForaDaFaixa(t *testing.T) {
	svc := novoAvaliacaoServiceParaTeste(t)
	ctx := context.Background()

	_, err := svc.CreateAvaliacao(ctx, dto.CreateAvaliacaoDTO{
		NomeEscola:              "Escola Rural Norte",
		DataVisita:              "2024-02-05",
		CondicoesInfraestrutura: 0,
		Observacoes:             "Sem laboratório de informática.",
		RecomendacoesMelhorias:  "Montar sala com 10 máquinas.",
		TecnicoResponsavel:      "Carlos Lima",
	})
	require.NoError(t, err)

	// A nota 0 é contada normalmente: entra no total, na média e na faixa
	// de melhoria (0 <= 2), mesmo sendo exibida como "N/A".
	stats, err := svc.GetEstatisticas(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2.3, stats.MediaGeral)
	assert.Equal(t, 3, stats.EscolasAvaliadas)
	assert.Equal(t, 1, stats.NecessitamMelhoria)
}
