package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotaTextoCobreTodaAFaixa(t *testing.T) {
	casos := map[int]string{
		1:  "Muito Ruim",
		2:  "Ruim",
		3:  "Regular",
		4:  "Bom",
		5:  "Excelente",
		0:  "N/A",
		6:  "N/A",
		-1: "N/A",
	}
	for nota, esperado := range casos {
		av := Avaliacao{CondicoesInfraestrutura: nota}
		assert.Equal(t, esperado, av.NotaTexto(), "nota %d", nota)
	}
}
