package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProdutoMaisVendido produto com maior soma de quantidades de saída.
type ProdutoMaisVendido struct {
	Nome              string
	QuantidadeVendida int
}

// DashboardRepository consultas read-only de agregação para o painel do estabelecimento.
type DashboardRepository interface {
	CountProdutos(ctx context.Context, estabelecimentoID string) (int, error)
	CountProdutosPorStatus(ctx context.Context, estabelecimentoID, status string) (int, error)
	// ValorEstoque retorna SUM(estoque_atual * preco_compra) e SUM(estoque_atual * preco_venda).
	ValorEstoque(ctx context.Context, estabelecimentoID string) (compra, venda decimal.Decimal, err error)
	// GetProdutoMaisVendido agrega as saídas por produto; nil se não houver saídas.
	GetProdutoMaisVendido(ctx context.Context, estabelecimentoID string) (*ProdutoMaisVendido, error)
	CountMovimentacoes(ctx context.Context, estabelecimentoID string) (int, error)
}
