package constants

// Chaves do armazenamento chave-valor, uma por coleção.
// Cada chave guarda a coleção inteira como um array JSON.
const (
	StorageKeyEquipamentos = "ti-equipments"
	StorageKeyChamados     = "ti-chamados"
	StorageKeyAvaliacoes   = "ti-avaliacoes"
)

// Situações de equipamento
const (
	SituacaoEmUso      = "Em uso"
	SituacaoDisponivel = "Disponível"
	SituacaoManutencao = "Manutenção"
	SituacaoDescartado = "Descartado"
)

// Prioridades de chamado
const (
	PrioridadeBaixa = "baixa"
	PrioridadeMedia = "media"
	PrioridadeAlta  = "alta"
)

// Status de chamado
const (
	StatusPendente  = "pendente"
	StatusConcluido = "concluido"
)

// TiposEquipamento são as categorias aceitas nos formulários.
var TiposEquipamento = []string{
	"PC", "Notebook", "Impressora", "Projetor", "Monitor", "Tablet", "Roteador",
}

// Situacoes na ordem exibida nos formulários.
var Situacoes = []string{
	SituacaoEmUso, SituacaoDisponivel, SituacaoManutencao, SituacaoDescartado,
}

// Prioridades na ordem exibida nos formulários.
var Prioridades = []string{PrioridadeBaixa, PrioridadeMedia, PrioridadeAlta}
