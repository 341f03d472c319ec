package entities

// Chamado registra um atendimento técnico realizado em uma escola.
// EquipamentoRelacionado é apenas o nome exibido, não uma referência
// ao cadastro de equipamentos.
type Chamado struct {
	ID                     string `json:"id"`
	Escola                 string `json:"escola"`
	DataAtendimento        string `json:"dataAtendimento"`
	ProblemaRelatado       string `json:"problemaRelatado"`
	SolucaoAplicada        string `json:"solucaoAplicada"`
	TecnicoResponsavel     string `json:"tecnicoResponsavel"`
	EquipamentoRelacionado string `json:"equipamentoRelacionado"`
	Prioridade             string `json:"prioridade"`
	Status                 string `json:"status"`
}
