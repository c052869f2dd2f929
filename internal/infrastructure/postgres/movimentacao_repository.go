package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do porto MovimentacaoRepository sobre
// PostgreSQL (aceita pool ou tx). O razão é append-only: só INSERT e SELECT.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create insere uma movimentação no razão.
func (r *MovimentacaoRepo) Create(ctx context.Context, mov *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (id, estabelecimento_id, produto_id, tipo, quantidade, observacao, valor_unitario, valor_total, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	observacao := (*string)(nil)
	if mov.Observacao != "" {
		observacao = &mov.Observacao
	}
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.EstabelecimentoID, mov.ProdutoID, mov.Tipo, mov.Quantidade,
		observacao, mov.ValorUnitario, mov.ValorTotal, mov.Data, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// ListCursor lista movimentações por cursor, ordenadas por created_at DESC,
// id DESC, com resumo do produto; produtoID opcional filtra por produto.
// Busca limit+1 linhas para detectar hasMore.
func (r *MovimentacaoRepo) ListCursor(ctx context.Context, estabelecimentoID string, cursor *string, limit int, produtoID string) (*repository.MovimentacaoPage, error) {
	query := `
		SELECT m.id, m.estabelecimento_id, m.produto_id, m.tipo, m.quantidade, m.observacao,
			m.valor_unitario, m.valor_total, m.data, m.created_at,
			p.id, p.nome, p.categoria
		FROM movimentacoes m
		JOIN produtos p ON p.id = m.produto_id
		WHERE m.estabelecimento_id = $1`
	args := []any{estabelecimentoID}
	if produtoID != "" {
		args = append(args, produtoID)
		query += fmt.Sprintf(` AND m.produto_id = $%d`, len(args))
	}
	if cursor != nil && *cursor != "" {
		args = append(args, *cursor)
		query += fmt.Sprintf(` AND (m.created_at, m.id) < (SELECT created_at, id FROM movimentacoes WHERE id = $%d)`, len(args))
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY m.created_at DESC, m.id DESC LIMIT $%d`, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()

	var list []*repository.MovimentacaoComProduto
	for rows.Next() {
		var m repository.MovimentacaoComProduto
		var observacao *string
		if err := rows.Scan(
			&m.ID, &m.EstabelecimentoID, &m.ProdutoID, &m.Tipo, &m.Quantidade, &observacao,
			&m.ValorUnitario, &m.ValorTotal, &m.Data, &m.CreatedAt,
			&m.Produto.ID, &m.Produto.Nome, &m.Produto.Categoria,
		); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		if observacao != nil {
			m.Observacao = *observacao
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}

	page := &repository.MovimentacaoPage{HasMore: len(list) > limit}
	if page.HasMore {
		list = list[:limit]
	}
	page.Data = list
	if page.HasMore && len(list) > 0 {
		id := list[len(list)-1].ID
		page.NextCursor = &id
	}
	return page, nil
}

// CountByEstabelecimento conta todas as movimentações do estabelecimento.
func (r *MovimentacaoRepo) CountByEstabelecimento(ctx context.Context, estabelecimentoID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimentacoes WHERE estabelecimento_id = $1`, estabelecimentoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movimentacoes: %w", err)
	}
	return n, nil
}

// CountByPeriodo conta movimentações criadas no intervalo [de, ate]
// (limite mensal do plano FREE).
func (r *MovimentacaoRepo) CountByPeriodo(ctx context.Context, estabelecimentoID string, de, ate time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM movimentacoes WHERE estabelecimento_id = $1 AND created_at >= $2 AND created_at <= $3`,
		estabelecimentoID, de, ate,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movimentacoes no período: %w", err)
	}
	return n, nil
}
