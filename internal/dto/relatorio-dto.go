package dto

import "sistema-ti/internal/entities"

// RelatorioDTO é a resposta da geração do relatório: resultados completos,
// resumo e a prévia limitada que as listas da tela exibem.
type RelatorioDTO struct {
	Filtros    entities.FiltrosRelatorio    `json:"filtros"`
	Resultados entities.ResultadosRelatorio `json:"resultados"`
	Resumo     entities.ResumoRelatorio     `json:"resumo"`
	Previa     RelatorioPreviaDTO           `json:"previa"`
}

// RelatorioPreviaDTO limita cada lista ao que a tela mostra
// (10 equipamentos, 10 chamados, 6 avaliações) e informa quantos
// registros ficaram de fora.
type RelatorioPreviaDTO struct {
	Equipamentos     []entities.Equipamento `json:"equipamentos"`
	Chamados         []entities.Chamado     `json:"chamados"`
	Avaliacoes       []entities.Avaliacao   `json:"avaliacoes"`
	MaisEquipamentos int                    `json:"maisEquipamentos"`
	MaisChamados     int                    `json:"maisChamados"`
	MaisAvaliacoes   int                    `json:"maisAvaliacoes"`
}
