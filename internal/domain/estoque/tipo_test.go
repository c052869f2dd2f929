package estoque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coderonin/barstock-api/internal/domain/estoque"
)

func TestNormalizarTipo_RemoveAcentos(t *testing.T) {
	assert.Equal(t, "Saida", estoque.NormalizarTipo("Saída"))
	assert.Equal(t, "Entrada", estoque.NormalizarTipo("Entrada"))
	assert.Equal(t, "saida", estoque.NormalizarTipo("saída"))
	// A caixa original é preservada; só a acentuação muda.
	assert.Equal(t, "SAIDA", estoque.NormalizarTipo("SAÍDA"))
}

func TestEhSaida_EquivalenciaAcentoECaixa(t *testing.T) {
	for _, tipo := range []string{"Saida", "Saída", "saida", "saída", "SAÍDA", "sAiDa"} {
		assert.True(t, estoque.EhSaida(tipo), "tipo %q deve contar como saída", tipo)
		assert.False(t, estoque.EhEntrada(tipo), "tipo %q não é entrada", tipo)
	}
}

func TestEhEntrada_EquivalenciaCaixa(t *testing.T) {
	for _, tipo := range []string{"Entrada", "entrada", "ENTRADA"} {
		assert.True(t, estoque.EhEntrada(tipo), "tipo %q deve contar como entrada", tipo)
		assert.False(t, estoque.EhSaida(tipo), "tipo %q não é saída", tipo)
	}
}

func TestTipoDesconhecido_NaoEhEntradaNemSaida(t *testing.T) {
	for _, tipo := range []string{"Ajuste", "transferencia", "", "Entradas"} {
		assert.False(t, estoque.EhEntrada(tipo))
		assert.False(t, estoque.EhSaida(tipo))
	}
}
