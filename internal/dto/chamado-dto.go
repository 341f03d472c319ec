package dto

type CreateChamadoDTO struct {
	Escola                 string `json:"escola" validate:"required"`
	DataAtendimento        string `json:"dataAtendimento" validate:"required"`
	ProblemaRelatado       string `json:"problemaRelatado" validate:"required"`
	SolucaoAplicada        string `json:"solucaoAplicada" validate:"required"`
	TecnicoResponsavel     string `json:"tecnicoResponsavel" validate:"required"`
	EquipamentoRelacionado string `json:"equipamentoRelacionado"`
	Prioridade             string `json:"prioridade" validate:"required"`
}

// FiltroChamadoDTO é o filtro da tela de chamados.
type FiltroChamadoDTO struct {
	Escola  string `query:"escola"`
	Status  string `query:"status"`
	Tecnico string `query:"tecnico"`
}

// ChamadoStatsDTO são os cartões de estatística da tela de chamados.
type ChamadoStatsDTO struct {
	Total          int `json:"total"`
	AltaPrioridade int `json:"altaPrioridade"`
	EsteMes        int `json:"esteMes"`
	Concluidos     int `json:"concluidos"`
}
