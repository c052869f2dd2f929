package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL (aceita pool ou tx).
// Toda consulta filtra por estabelecimento_id: produto de outro tenant não existe.
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColumns = `id, estabelecimento_id, fornecedor_id, nome, categoria, volume,
	estoque_atual, estoque_minimo, preco_compra, preco_venda, status, created_at, updated_at`

// Create persiste um novo produto com status já derivado.
func (r *ProdutoRepo) Create(ctx context.Context, produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		produto.ID, produto.EstabelecimentoID, produto.FornecedorID,
		produto.Nome, produto.Categoria, produto.Volume,
		produto.EstoqueAtual, produto.EstoqueMinimo,
		produto.PrecoCompra, produto.PrecoVenda, produto.Status,
		produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por (id, estabelecimento). Retorna nil, nil se não existir.
func (r *ProdutoRepo) GetByID(ctx context.Context, id, estabelecimentoID string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos WHERE id = $1 AND estabelecimento_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, id, estabelecimentoID))
}

// GetByIDForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Usar dentro de transação: impede que duas movimentações concorrentes leiam o
// mesmo estoque.
func (r *ProdutoRepo) GetByIDForUpdate(ctx context.Context, id, estabelecimentoID string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos WHERE id = $1 AND estabelecimento_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id, estabelecimentoID))
}

func (r *ProdutoRepo) scanOne(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(
		&p.ID, &p.EstabelecimentoID, &p.FornecedorID, &p.Nome, &p.Categoria, &p.Volume,
		&p.EstoqueAtual, &p.EstoqueMinimo, &p.PrecoCompra, &p.PrecoVenda, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Update grava todos os campos editáveis do produto.
func (r *ProdutoRepo) Update(ctx context.Context, produto *entity.Produto) error {
	query := `
		UPDATE produtos
		SET fornecedor_id = $3, nome = $4, categoria = $5, volume = $6,
			estoque_atual = $7, estoque_minimo = $8, preco_compra = $9, preco_venda = $10,
			status = $11, updated_at = $12
		WHERE id = $1 AND estabelecimento_id = $2`
	_, err := r.q.Exec(ctx, query,
		produto.ID, produto.EstabelecimentoID, produto.FornecedorID,
		produto.Nome, produto.Categoria, produto.Volume,
		produto.EstoqueAtual, produto.EstoqueMinimo,
		produto.PrecoCompra, produto.PrecoVenda, produto.Status, produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateEstoqueStatus grava apenas estoque_atual e status (caminho do razão de
// movimentações).
func (r *ProdutoRepo) UpdateEstoqueStatus(ctx context.Context, id string, estoqueAtual int, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE produtos SET estoque_atual = $2, status = $3, updated_at = now() WHERE id = $1`,
		id, estoqueAtual, status,
	)
	if err != nil {
		return fmt.Errorf("update estoque produto: %w", err)
	}
	return nil
}

// ListCursor lista produtos por cursor, ordenados por created_at DESC, id DESC,
// com resumo do fornecedor. Busca limit+1 linhas para detectar hasMore.
func (r *ProdutoRepo) ListCursor(ctx context.Context, estabelecimentoID string, cursor *string, limit int) (*repository.ProdutoPage, error) {
	query := `
		SELECT p.id, p.estabelecimento_id, p.fornecedor_id, p.nome, p.categoria, p.volume,
			p.estoque_atual, p.estoque_minimo, p.preco_compra, p.preco_venda, p.status,
			p.created_at, p.updated_at, f.id, f.nome
		FROM produtos p
		LEFT JOIN fornecedores f ON f.id = p.fornecedor_id
		WHERE p.estabelecimento_id = $1`
	args := []any{estabelecimentoID}
	if cursor != nil && *cursor != "" {
		query += ` AND (p.created_at, p.id) < (SELECT created_at, id FROM produtos WHERE id = $2)`
		args = append(args, *cursor)
	}
	query += fmt.Sprintf(` ORDER BY p.created_at DESC, p.id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var list []*repository.ProdutoComFornecedor
	for rows.Next() {
		var p repository.ProdutoComFornecedor
		var fornecedorID, fornecedorNome *string
		if err := rows.Scan(
			&p.ID, &p.EstabelecimentoID, &p.FornecedorID, &p.Nome, &p.Categoria, &p.Volume,
			&p.EstoqueAtual, &p.EstoqueMinimo, &p.PrecoCompra, &p.PrecoVenda, &p.Status,
			&p.CreatedAt, &p.UpdatedAt, &fornecedorID, &fornecedorNome,
		); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		if fornecedorID != nil && fornecedorNome != nil {
			p.Fornecedor = &repository.FornecedorResumo{ID: *fornecedorID, Nome: *fornecedorNome}
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	return paginarProdutos(list, limit), nil
}

func paginarProdutos(list []*repository.ProdutoComFornecedor, limit int) *repository.ProdutoPage {
	page := &repository.ProdutoPage{HasMore: len(list) > limit}
	if page.HasMore {
		list = list[:limit]
	}
	page.Data = list
	if page.HasMore && len(list) > 0 {
		id := list[len(list)-1].ID
		page.NextCursor = &id
	}
	return page
}

// Delete remove um produto do estabelecimento.
func (r *ProdutoRepo) Delete(ctx context.Context, id, estabelecimentoID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM produtos WHERE id = $1 AND estabelecimento_id = $2`, id, estabelecimentoID)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

// CountByEstabelecimento conta produtos do estabelecimento (limite de plano).
func (r *ProdutoRepo) CountByEstabelecimento(ctx context.Context, estabelecimentoID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM produtos WHERE estabelecimento_id = $1`, estabelecimentoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count produtos: %w", err)
	}
	return n, nil
}
