package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status derivado de reposição de um produto.
const (
	StatusOK      = "OK"
	StatusAtencao = "Atencao"
	StatusRepor   = "Repor"
)

// Produto representa um item do estoque do estabelecimento.
// EstoqueAtual e Status só mudam pela criação ou pelo registro de movimentações;
// edição direta dos campos de estoque exige recalcular o status junto.
type Produto struct {
	ID                string
	EstabelecimentoID string
	FornecedorID      *string // opcional
	Nome              string
	Categoria         string
	Volume            string
	EstoqueAtual      int
	EstoqueMinimo     int
	PrecoCompra       decimal.Decimal
	PrecoVenda        decimal.Decimal
	Status            string // OK | Atencao | Repor
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
