package entities

// FiltrosRelatorio é o registro esparso de critérios do relatório cruzado.
// Campo vazio = sem restrição naquela dimensão. Cada coleção consulta apenas
// as dimensões que fazem sentido para ela: escola restringe as três,
// tipo/situação só equipamentos, técnico e período só chamados/avaliações
// (o período vale apenas para chamados).
type FiltrosRelatorio struct {
	Escola              string `json:"escola"`
	TipoEquipamento     string `json:"tipoEquipamento"`
	SituacaoEquipamento string `json:"situacaoEquipamento"`
	DataInicio          string `json:"dataInicio"`
	DataFim             string `json:"dataFim"`
	Tecnico             string `json:"tecnico"`
}

// Vazio informa se nenhum critério foi preenchido.
func (f FiltrosRelatorio) Vazio() bool {
	return f.Escola == "" && f.TipoEquipamento == "" && f.SituacaoEquipamento == "" &&
		f.DataInicio == "" && f.DataFim == "" && f.Tecnico == ""
}

// ResultadosRelatorio são os três subconjuntos filtrados, na ordem original.
type ResultadosRelatorio struct {
	Equipamentos []Equipamento `json:"equipamentos"`
	Chamados     []Chamado     `json:"chamados"`
	Avaliacoes   []Avaliacao   `json:"avaliacoes"`
}

// ResumoRelatorio são as contagens derivadas dos subconjuntos.
type ResumoRelatorio struct {
	TotalEquipamentos int `json:"totalEquipamentos"`
	TotalChamados     int `json:"totalChamados"`
	TotalAvaliacoes   int `json:"totalAvaliacoes"`
}

// SnapshotRelatorio é o artefato de exportação: critérios usados, momento da
// geração, resultados completos e resumo.
type SnapshotRelatorio struct {
	Filtros     FiltrosRelatorio    `json:"filtros"`
	DataGeracao string              `json:"dataGeracao"`
	Resultados  ResultadosRelatorio `json:"resultados"`
	Resumo      ResumoRelatorio     `json:"resumo"`
}
