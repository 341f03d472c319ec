package dto

type CreateEquipamentoDTO struct {
	Nome           string            `json:"nome" validate:"required"`
	Tipo           string            `json:"tipo" validate:"required"`
	Modelo         string            `json:"modelo" validate:"required"`
	Patrimonio     string            `json:"patrimonio" validate:"required"`
	Local          string            `json:"local" validate:"required"`
	Situacao       string            `json:"situacao" validate:"required"`
	Especificacoes map[string]string `json:"especificacoes"`
}

// FiltroEquipamentoDTO é o filtro da tela de equipamentos.
// Campo vazio não restringe.
type FiltroEquipamentoDTO struct {
	Tipo     string `query:"tipo"`
	Situacao string `query:"situacao"`
	Local    string `query:"local"`
}
