package dto

// DashboardEquipamentosDTO é o bloco de contagens de equipamentos por situação.
type DashboardEquipamentosDTO struct {
	Total       int `json:"total"`
	EmUso       int `json:"emUso"`
	Disponiveis int `json:"disponiveis"`
	Manutencao  int `json:"manutencao"`
	Descartados int `json:"descartados"`
}

// DashboardChamadosDTO agrupa chamados por janelas do calendário local:
// mesmo dia, mesma semana (ISO) e mesmo mês/ano de hoje.
type DashboardChamadosDTO struct {
	Hoje       int `json:"hoje"`
	EstaSemana int `json:"estaSemana"`
	EsteMes    int `json:"esteMes"`
}

type DashboardEscolaDTO struct {
	Escola   string `json:"escola"`
	Chamados int    `json:"chamados"`
}

type DashboardStatsDTO struct {
	Equipamentos      DashboardEquipamentosDTO `json:"equipamentos"`
	Chamados          DashboardChamadosDTO     `json:"chamados"`
	ChamadosPorEscola []DashboardEscolaDTO     `json:"chamadosPorEscola"`
}
