package repositories

import (
	"sistema-ti/internal/entities"
	"sistema-ti/pkg/constants"
)

// Dados iniciais gravados no primeiro acesso de cada coleção,
// quando a chave ainda não existe no armazenamento.

func seedEquipamentos() []entities.Equipamento {
	return []entities.Equipamento{
		{
			ID:         "1",
			Nome:       "Desktop Administrativo 01",
			Tipo:       "PC",
			Modelo:     "Dell OptiPlex 3080",
			Patrimonio: "TI001234",
			Local:      "Escola Municipal Santos",
			Situacao:   constants.SituacaoEmUso,
			Especificacoes: map[string]string{
				"processador":        "Intel Core i5-10400",
				"memoria":            "8GB DDR4",
				"armazenamento":      "256GB SSD",
				"sistemaOperacional": "Windows 11 Pro",
			},
			DataInclusao: "2024-01-15",
		},
		{
			ID:         "2",
			Nome:       "Impressora Sala Professores",
			Tipo:       "Impressora",
			Modelo:     "HP LaserJet Pro M404dn",
			Patrimonio: "TI001235",
			Local:      "Colégio Central",
			Situacao:   constants.SituacaoEmUso,
			Especificacoes: map[string]string{
				"tipo":          "Laser",
				"conectividade": "USB, Ethernet",
			},
			DataInclusao: "2024-01-20",
		},
	}
}

func seedChamados() []entities.Chamado {
	return []entities.Chamado{
		{
			ID:                     "1",
			Escola:                 "Escola Municipal Santos",
			DataAtendimento:        "2024-01-15",
			ProblemaRelatado:       "Computador não liga",
			SolucaoAplicada:        "Substituição da fonte de alimentação",
			TecnicoResponsavel:     "João Silva",
			EquipamentoRelacionado: "Desktop Administrativo 01",
			Prioridade:             constants.PrioridadeAlta,
			Status:                 constants.StatusConcluido,
		},
		{
			ID:                     "2",
			Escola:                 "Colégio Central",
			DataAtendimento:        "2024-01-16",
			ProblemaRelatado:       "Impressora não imprime",
			SolucaoAplicada:        "Limpeza dos cabeçotes e troca de cartucho",
			TecnicoResponsavel:     "Maria Santos",
			EquipamentoRelacionado: "Impressora Sala Professores",
			Prioridade:             constants.PrioridadeMedia,
			Status:                 constants.StatusConcluido,
		},
	}
}

func seedAvaliacoes() []entities.Avaliacao {
	return []entities.Avaliacao{
		{
			ID:                      "1",
			NomeEscola:              "Escola Municipal Santos",
			DataVisita:              "2024-01-10",
			CondicoesInfraestrutura: 4,
			Observacoes:             "Laboratório de informática em boas condições. Rede wi-fi funcionando adequadamente.",
			RecomendacoesMelhorias:  "Substituir 2 computadores mais antigos. Instalar ponto de rede adicional na sala dos professores.",
			TecnicoResponsavel:      "João Silva",
		},
		{
			ID:                      "2",
			NomeEscola:              "Colégio Central",
			DataVisita:              "2024-01-12",
			CondicoesInfraestrutura: 3,
			Observacoes:             "Alguns equipamentos precisam de manutenção. Cabeamento de rede organizado.",
			RecomendacoesMelhorias:  "Upgrade de memória em 3 computadores. Configuração de backup automático.",
			TecnicoResponsavel:      "Maria Santos",
		},
	}
}
