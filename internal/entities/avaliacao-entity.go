package entities

// Avaliacao é o parecer de infraestrutura de TI de uma visita à escola.
type Avaliacao struct {
	ID                      string `json:"id"`
	NomeEscola              string `json:"nomeEscola"`
	DataVisita              string `json:"dataVisita"`
	CondicoesInfraestrutura int    `json:"condicoesInfraestrutura"`
	Observacoes             string `json:"observacoes"`
	RecomendacoesMelhorias  string `json:"recomendacoesMelhorias"`
	TecnicoResponsavel      string `json:"tecnicoResponsavel"`
}

// NotaTexto converte a nota 1..5 no rótulo exibido.
// Qualquer valor fora da faixa vira "N/A"; registros com nota inválida
// continuam sendo armazenados e contados normalmente.
func (a Avaliacao) NotaTexto() string {
	switch a.CondicoesInfraestrutura {
	case 1:
		return "Muito Ruim"
	case 2:
		return "Ruim"
	case 3:
		return "Regular"
	case 4:
		return "Bom"
	case 5:
		return "Excelente"
	default:
		return "N/A"
	}
}
