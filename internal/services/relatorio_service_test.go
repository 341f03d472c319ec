package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sistema-ti/internal/entities"
	"sistema-ti/internal/repositories"
)

func novoRelatorioServiceParaTeste(t *testing.T) *RelatorioService {
	t.Helper()
	kv := repositories.NewMemoryKVRepository()
	logger := zap.NewNop()

	return NewRelatorioService(
		repositories.NewEquipamentoRepository(kv, logger),
		repositories.NewChamadoRepository(kv, logger),
		repositories.NewAvaliacaoRepository(kv, logger),
		logger,
	)
}

func TestGerarRelatorioSemCriteriosDevolveColecoesCompletas(t *testing.T) {
	svc := novoRelatorioServiceParaTeste(t)
	ctx := context.Background()

	res, err := svc.GerarRelatorio(ctx, entities.FiltrosRelatorio{})
	require.NoError(t, err)

	assert.Len(t, res.Resultados.Equipamentos, 2)
	assert.Len(t, res.Resultados.Chamados, 2)
	assert.Len(t, res.Resultados.Avaliacoes, 2)

	// Ordem e conteúdo preservados.
	assert.Equal(t, "1", res.Resultados.Equipamentos[0].ID)
	assert.Equal(t, "2", res.Resultados.Equipamentos[1].ID)
	assert.Equal(t, "Desktop Administrativo 01", res.Resultados.Equipamentos[0].Nome)
}

func TestGerarRelatorioFiltraPorEscolaComIgualdadeExata(t *testing.T) {
	svc := novoRelatorioServiceParaTeste(t)
	ctx := context.Background()

	res, err := svc.GerarRelatorio(ctx, entities.FiltrosRelatorio{Escola: "Escola Municipal Santos"})
	require.NoError(t, err)

	require.Len(t, res.Resultados.Equipamentos, 1)
	assert.Equal(t, "Escola Municipal Santos", res.Resultados.Equipamentos[0].Local)
	require.Len(t, res.Resultados.Chamados, 1)
	assert.Equal(t, "Escola Municipal Santos", res.Resultados.Chamados[0].Escola)
	require.Len(t, res.Resultados.Avaliacoes, 1)
	assert.Equal(t, "Escola Municipal Santos", res.Resultados.Avaliacoes[0].NomeEscola)

	// Prefixo não casa: a comparação é de igualdade, não de substring.
	vazio, err := svc.GerarRelatorio(ctx, entities.FiltrosRelatorio{Escola: "Escola Municipal"})
	require.NoError(t, err)
	assert.Empty(t, vazio.Resultados.Equipamentos)
	assert.Empty(t, vazio.Resultados.Chamados)
	assert.Empty(t, vazio.Resultados.Avaliacoes)
}

func TestGerarRelatorioFiltroDeTecnicoNaoAfetaEquipamentos(t *testing.T) {
	svc := novoRelatorioServiceParaTeste(t)
	ctx := context.Background()

	res, err := svc.GerarRelatorio(ctx, entities.FiltrosRelatorio{Tecnico: "João Silva"})
	require.NoError(t, err)

	// Equipamentos não têm técnico: a dimensão é ignorada para eles.
	assert.Len(t, res.Resultados.Equipamentos, 2)
	require.Len(t, res.Resultados.Chamados, 1)
	assert.Equal(t, "João Silva", res.Resultados.Chamados[0].TecnicoResponsavel)
	require.Len(t, res.Resultados.Avaliacoes, 1)
	assert.Equal(t, "João Silva", res.Resultados.Avaliacoes[0].TecnicoResponsavel)
}

func TestPeriodoSoFiltraComAsDuasPontasPreenchidas(t *testing.T) {
	chamados := []entities.Chamado{
		{ID: "1", Escola: "Colégio Central", DataAtendimento: "2024-01-10"},
		{ID: "2", Escola: "Colégio Central", DataAtendimento: "2024-02-20"},
		{ID: "3", Escola: "Colégio Central", DataAtendimento: "data-invalida"},
	}

	// Uma ponta só: o período inteiro é ignorado.
	soInicio := FiltrarResultados(entities.FiltrosRelatorio{DataInicio: "2024-01-01"}, nil, chamados, nil)
	assert.Len(t, soInicio.Chamados, 3)
	soFim := FiltrarResultados(entities.FiltrosRelatorio{DataFim: "2024-12-31"}, nil, chamados, nil)
	assert.Len(t, soFim.Chamados, 3)

	// Duas pontas: intervalo fechado, datas ilegíveis ficam de fora.
	periodo := FiltrarResultados(entities.FiltrosRelatorio{DataInicio: "2024-01-10", DataFim: "2024-01-31"}, nil, chamados, nil)
	require.Len(t, periodo.Chamados, 1)
	assert.Equal(t, "1", periodo.Chamados[0].ID)

	tudo := FiltrarResultados(entities.FiltrosRelatorio{DataInicio: "2024-01-01", DataFim: "2024-12-31"}, nil, chamados, nil)
	assert.Len(t, tudo.Chamados, 2)
}

func TestResumoContaExatamenteOsSubconjuntos(t *testing.T) {
	svc := novoRelatorioServiceParaTeste(t)
	ctx := context.Background()

	criterios := []entities.FiltrosRelatorio{
		{},
		{Escola: "Escola Municipal Santos"},
		{Tecnico: "Maria Santos"},
		{Escola: "inexistente"},
	}
	for _, c := range criterios {
		res, err := svc.GerarRelatorio(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, len(res.Resultados.Equipamentos), res.Resumo.TotalEquipamentos)
		assert.Equal(t, len(res.Resultados.Chamados), res.Resumo.TotalChamados)
		assert.Equal(t, len(res.Resultados.Avaliacoes), res.Resumo.TotalAvaliacoes)
	}
}

func TestGerarRelatorioEhIdempotente(t *testing.T) {
	svc := novoRelatorioServiceParaTeste(t)
	ctx := context.Background()
	filtros := entities.FiltrosRelatorio{Escola: "Colégio Central"}

	primeiro, err := svc.GerarRelatorio(ctx, filtros)
	require.NoError(t, err)
	segundo, err := svc.GerarRelatorio(ctx, filtros)
	require.NoError(t, err)

	assert.Equal(t, primeiro.Resultados, segundo.Resultados)
	assert.Equal(t, primeiro.Resumo, segundo.Resumo)
}

func TestFiltrarResultadosEquipamentoPorEscola(t *testing.T) {
	equipamentos := []entities.Equipamento{
		{ID: "1", Local: "Escola Municipal Santos", Tipo: "PC", Situacao: "Em uso"},
	}

	res := FiltrarResultados(entities.FiltrosRelatorio{Escola: "Escola Municipal Santos"}, equipamentos, nil, nil)

	require.Len(t, res.Equipamentos, 1)
	assert.Equal(t, "1", res.Equipamentos[0].ID)
	assert.Empty(t, res.Chamados)
	assert.Empty(t, res.Avaliacoes)
}

func TestFiltrarResultadosChamadosPorTecnico(t *testing.T) {
	chamados := []entities.Chamado{
		{ID: "1", Escola: "Escola Municipal Santos", Prioridade: "alta", TecnicoResponsavel: "João Silva"},
		{ID: "2", Escola: "Colégio Central", Prioridade: "media", TecnicoResponsavel: "Maria Santos"},
	}

	res := FiltrarResultados(entities.FiltrosRelatorio{Tecnico: "João Silva"}, nil, chamados, nil)

	require.Len(t, res.Chamados, 1)
	assert.Equal(t, "1", res.Chamados[0].ID)
	assert.Equal(t, "João Silva", res.Chamados[0].TecnicoResponsavel)
}

func TestExportarJSONGeraSnapshotCompleto(t *testing.T) {
	svc := novoRelatorioServiceParaTeste(t)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	ctx := context.Background()

	raw, nomeArquivo, err := svc.ExportarJSON(ctx, entities.FiltrosRelatorio{})
	require.NoError(t, err)
	assert.Equal(t, "relatorio-ti-2024-03-15.json", nomeArquivo)

	var snapshot entities.SnapshotRelatorio
	require.NoError(t, json.Unmarshal(raw, &snapshot))

	assert.Equal(t, "2024-03-15T10:30:00Z", snapshot.DataGeracao)
	assert.Equal(t, 2, snapshot.Resumo.TotalEquipamentos)
	assert.Equal(t, 2, snapshot.Resumo.TotalChamados)
	assert.Equal(t, 2, snapshot.Resumo.TotalAvaliacoes)
	assert.Len(t, snapshot.Resultados.Equipamentos, 2)
	assert.True(t, snapshot.Filtros.Vazio())
}

func TestExportarJSONCarregaOsCriteriosUsados(t *testing.T) {
	svc := novoRelatorioServiceParaTeste(t)
	ctx := context.Background()
	filtros := entities.FiltrosRelatorio{Escola: "Colégio Central", Tecnico: "Maria Santos"}

	raw, _, err := svc.ExportarJSON(ctx, filtros)
	require.NoError(t, err)

	var snapshot entities.SnapshotRelatorio
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	assert.Equal(t, filtros, snapshot.Filtros)
	require.Len(t, snapshot.Resultados.Chamados, 1)
	assert.Equal(t, "Maria Santos", snapshot.Resultados.Chamados[0].TecnicoResponsavel)
}

func TestPreviaLimitaCadaColecao(t *testing.T) {
	var equipamentos []entities.Equipamento
	for i := 0; i < 12; i++ {
		equipamentos = append(equipamentos, entities.Equipamento{ID: "eq"})
	}
	var avaliacoes []entities.Avaliacao
	for i := 0; i < 8; i++ {
		avaliacoes = append(avaliacoes, entities.Avaliacao{ID: "av"})
	}

	previa := montarPrevia(entities.ResultadosRelatorio{
		Equipamentos: equipamentos,
		Chamados:     []entities.Chamado{{ID: "ch"}},
		Avaliacoes:   avaliacoes,
	})

	assert.Len(t, previa.Equipamentos, 10)
	assert.Equal(t, 2, previa.MaisEquipamentos)
	assert.Len(t, previa.Chamados, 1)
	assert.Zero(t, previa.MaisChamados)
	assert.Len(t, previa.Avaliacoes, 6)
	assert.Equal(t, 2, previa.MaisAvaliacoes)
}
