package estoque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/estoque"
)

// As três faixas são delimitadas por mínimo e mínimo+5; os limites pertencem
// à faixa mais restritiva.
func TestCalcularStatus_Faixas(t *testing.T) {
	cases := []struct {
		nome    string
		estoque int
		minimo  int
		want    string
	}{
		{"abaixo do mínimo", 3, 10, entity.StatusRepor},
		{"exatamente no mínimo", 10, 10, entity.StatusRepor},
		{"um acima do mínimo", 11, 10, entity.StatusAtencao},
		{"exatamente em mínimo+5", 15, 10, entity.StatusAtencao},
		{"um acima de mínimo+5", 16, 10, entity.StatusOK},
		{"folga grande", 100, 10, entity.StatusOK},
		{"estoque zerado", 0, 5, entity.StatusRepor},
		{"mínimo zero com estoque zero", 0, 0, entity.StatusRepor},
		{"mínimo zero na faixa de atenção", 5, 0, entity.StatusAtencao},
		{"mínimo zero fora da faixa", 6, 0, entity.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			assert.Equal(t, tc.want, estoque.CalcularStatus(tc.estoque, tc.minimo))
		})
	}
}
