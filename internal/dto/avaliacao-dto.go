package dto

// CreateAvaliacaoDTO não restringe a faixa da nota de propósito:
// o armazenamento aceita valores fora de 1..5 e a exibição resolve
// com o rótulo "N/A".
type CreateAvaliacaoDTO struct {
	NomeEscola              string `json:"nomeEscola" validate:"required"`
	DataVisita              string `json:"dataVisita" validate:"required"`
	CondicoesInfraestrutura int    `json:"condicoesInfraestrutura"`
	Observacoes             string `json:"observacoes" validate:"required"`
	RecomendacoesMelhorias  string `json:"recomendacoesMelhorias" validate:"required"`
	TecnicoResponsavel      string `json:"tecnicoResponsavel" validate:"required"`
}

// FiltroAvaliacaoDTO é o filtro da tela de avaliações. Nota compara como
// inteiro exato a partir do texto ("4" casa apenas nota == 4).
type FiltroAvaliacaoDTO struct {
	Escola  string `query:"escola"`
	Tecnico string `query:"tecnico"`
	Nota    string `query:"nota"`
}

// AvaliacaoStatsDTO são os cartões de estatística da tela de avaliações.
type AvaliacaoStatsDTO struct {
	Total              int     `json:"total"`
	MediaGeral         float64 `json:"mediaGeral"`
	EscolasAvaliadas   int     `json:"escolasAvaliadas"`
	NecessitamMelhoria int     `json:"necessitamMelhoria"`
}
