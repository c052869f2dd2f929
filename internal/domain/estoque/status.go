package estoque

import "github.com/coderonin/barstock-api/internal/domain/entity"

// CalcularStatus deriva o status de reposição a partir de (estoque, mínimo).
// Regra compartilhada por criação de produto, edição manual de estoque e razão
// de movimentações — a derivação tem de ser idêntica em todos os caminhos.
//
//	estoque <= mínimo      → Repor
//	estoque <= mínimo + 5  → Atencao
//	estoque >  mínimo + 5  → OK
func CalcularStatus(estoqueAtual, estoqueMinimo int) string {
	if estoqueAtual <= estoqueMinimo {
		return entity.StatusRepor
	}
	if estoqueAtual <= estoqueMinimo+5 {
		return entity.StatusAtencao
	}
	return entity.StatusOK
}
