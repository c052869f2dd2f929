package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos canônicos de movimentação (comparação após normalizar acentos).
const (
	TipoEntrada = "Entrada"
	TipoSaida   = "Saida"
)

// Movimentacao é o registro imutável do razão de estoque: uma vez criada,
// nunca é atualizada nem removida. Tipo guarda o valor original enviado pelo
// cliente (com ou sem acento); ValorUnitario é o snapshot do preço no momento.
type Movimentacao struct {
	ID                string
	EstabelecimentoID string
	ProdutoID         string
	Tipo              string
	Quantidade        int
	Observacao        string
	ValorUnitario     decimal.Decimal
	ValorTotal        decimal.Decimal
	Data              time.Time
	CreatedAt         time.Time
}

// MovimentacaoProduto resumo do produto incluído nas listagens de movimentações.
type MovimentacaoProduto struct {
	ID        string
	Nome      string
	Categoria string
}
