package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only de agregação para o painel (sempre pool).
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository constrói o adaptador de agregações.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountProdutos conta os produtos do estabelecimento.
func (r *DashboardRepo) CountProdutos(ctx context.Context, estabelecimentoID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM produtos WHERE estabelecimento_id = $1`, estabelecimentoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count produtos: %w", err)
	}
	return n, nil
}

// CountProdutosPorStatus conta produtos do estabelecimento com o status dado.
func (r *DashboardRepo) CountProdutosPorStatus(ctx context.Context, estabelecimentoID, status string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM produtos WHERE estabelecimento_id = $1 AND status = $2`,
		estabelecimentoID, status,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count produtos por status: %w", err)
	}
	return n, nil
}

// ValorEstoque soma o estoque valorado a preço de compra e de venda.
func (r *DashboardRepo) ValorEstoque(ctx context.Context, estabelecimentoID string) (decimal.Decimal, decimal.Decimal, error) {
	var compra, venda decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(estoque_atual * preco_compra), 0),
			COALESCE(SUM(estoque_atual * preco_venda), 0)
		FROM produtos WHERE estabelecimento_id = $1`, estabelecimentoID,
	).Scan(&compra, &venda)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("valor do estoque: %w", err)
	}
	return compra, venda, nil
}

// GetProdutoMaisVendido agrega as saídas por produto e retorna o maior volume;
// nil se o estabelecimento ainda não registrou saídas.
func (r *DashboardRepo) GetProdutoMaisVendido(ctx context.Context, estabelecimentoID string) (*repository.ProdutoMaisVendido, error) {
	query := `
		SELECT p.nome, SUM(m.quantidade)::int AS quantidade_vendida
		FROM movimentacoes m
		JOIN produtos p ON p.id = m.produto_id
		WHERE m.estabelecimento_id = $1 AND m.tipo = $2
		GROUP BY p.id, p.nome
		ORDER BY quantidade_vendida DESC
		LIMIT 1`
	var mv repository.ProdutoMaisVendido
	err := r.q.QueryRow(ctx, query, estabelecimentoID, entity.TipoSaida).Scan(&mv.Nome, &mv.QuantidadeVendida)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("produto mais vendido: %w", err)
	}
	return &mv, nil
}

// CountMovimentacoes conta todas as movimentações do estabelecimento.
func (r *DashboardRepo) CountMovimentacoes(ctx context.Context, estabelecimentoID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimentacoes WHERE estabelecimento_id = $1`, estabelecimentoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movimentacoes: %w", err)
	}
	return n, nil
}
