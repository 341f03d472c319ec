package services

import (
	"strconv"
	"time"

	"sistema-ti/internal/dto"
	"sistema-ti/internal/entities"
)

// Predicados de filtro: um por coleção, sempre compostos por E lógico sobre
// os critérios preenchidos. Critério vazio nunca exclui um registro; critério
// com valor desconhecido simplesmente não casa com nada.

func matchEquipamentoRelatorio(f entities.FiltrosRelatorio, eq entities.Equipamento) bool {
	if f.Escola != "" && eq.Local != f.Escola {
		return false
	}
	if f.TipoEquipamento != "" && eq.Tipo != f.TipoEquipamento {
		return false
	}
	if f.SituacaoEquipamento != "" && eq.Situacao != f.SituacaoEquipamento {
		return false
	}
	return true
}

func matchChamadoRelatorio(f entities.FiltrosRelatorio, ch entities.Chamado) bool {
	if f.Escola != "" && ch.Escola != f.Escola {
		return false
	}
	if f.Tecnico != "" && ch.TecnicoResponsavel != f.Tecnico {
		return false
	}
	// O período só filtra quando as duas pontas estão preenchidas;
	// com uma única ponta ele é ignorado por completo.
	if f.DataInicio != "" && f.DataFim != "" {
		if !dentroDoPeriodo(ch.DataAtendimento, f.DataInicio, f.DataFim) {
			return false
		}
	}
	return true
}

func matchAvaliacaoRelatorio(f entities.FiltrosRelatorio, av entities.Avaliacao) bool {
	if f.Escola != "" && av.NomeEscola != f.Escola {
		return false
	}
	if f.Tecnico != "" && av.TecnicoResponsavel != f.Tecnico {
		return false
	}
	return true
}

// dentroDoPeriodo testa data ∈ [inicio, fim], limites inclusos.
// Datas que não podem ser interpretadas não casam.
func dentroDoPeriodo(data, inicio, fim string) bool {
	d, err := time.Parse("2006-01-02", data)
	if err != nil {
		return false
	}
	ini, err := time.Parse("2006-01-02", inicio)
	if err != nil {
		return false
	}
	f, err := time.Parse("2006-01-02", fim)
	if err != nil {
		return false
	}
	return !d.Before(ini) && !d.After(f)
}

// Filtros das telas de cadastro, com as dimensões próprias de cada uma.

func matchFiltroEquipamento(f dto.FiltroEquipamentoDTO, eq entities.Equipamento) bool {
	if f.Tipo != "" && eq.Tipo != f.Tipo {
		return false
	}
	if f.Situacao != "" && eq.Situacao != f.Situacao {
		return false
	}
	if f.Local != "" && eq.Local != f.Local {
		return false
	}
	return true
}

func matchFiltroChamado(f dto.FiltroChamadoDTO, ch entities.Chamado) bool {
	if f.Escola != "" && ch.Escola != f.Escola {
		return false
	}
	if f.Status != "" && ch.Status != f.Status {
		return false
	}
	if f.Tecnico != "" && ch.TecnicoResponsavel != f.Tecnico {
		return false
	}
	return true
}

func matchFiltroAvaliacao(f dto.FiltroAvaliacaoDTO, av entities.Avaliacao) bool {
	if f.Escola != "" && av.NomeEscola != f.Escola {
		return false
	}
	if f.Tecnico != "" && av.TecnicoResponsavel != f.Tecnico {
		return false
	}
	if f.Nota != "" {
		// Comparação exata: "4" casa apenas com nota igual a 4.
		nota, err := strconv.Atoi(f.Nota)
		if err != nil || av.CondicoesInfraestrutura != nota {
			return false
		}
	}
	return true
}
