package entities

// Equipamento é um item do inventário de TI de uma escola.
// Especificacoes é um mapa livre chave → valor: o conjunto de chaves varia
// conforme o tipo (processador/memória para PCs, lumens para projetores etc.),
// mas isso é convenção do formulário, não schema imposto aqui.
type Equipamento struct {
	ID             string            `json:"id"`
	Nome           string            `json:"nome"`
	Tipo           string            `json:"tipo"`
	Modelo         string            `json:"modelo"`
	Patrimonio     string            `json:"patrimonio"`
	Local          string            `json:"local"`
	Situacao       string            `json:"situacao"`
	Especificacoes map[string]string `json:"especificacoes"`
	DataInclusao   string            `json:"dataInclusao"`
}
