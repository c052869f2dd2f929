package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação do porto FornecedorRepository sobre PostgreSQL
// (aceita pool ou tx).
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um novo fornecedor.
func (r *FornecedorRepo) Create(ctx context.Context, fornecedor *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (id, estabelecimento_id, nome, telefone, prazo_entrega_dias, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		fornecedor.ID, fornecedor.EstabelecimentoID, fornecedor.Nome,
		fornecedor.Telefone, fornecedor.PrazoEntregaDias,
		fornecedor.CreatedAt, fornecedor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por (id, estabelecimento). Retorna nil, nil se não existir.
func (r *FornecedorRepo) GetByID(ctx context.Context, id, estabelecimentoID string) (*entity.Fornecedor, error) {
	query := `
		SELECT id, estabelecimento_id, nome, telefone, prazo_entrega_dias, created_at, updated_at
		FROM fornecedores WHERE id = $1 AND estabelecimento_id = $2`
	var f entity.Fornecedor
	err := r.q.QueryRow(ctx, query, id, estabelecimentoID).Scan(
		&f.ID, &f.EstabelecimentoID, &f.Nome, &f.Telefone,
		&f.PrazoEntregaDias, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// Update grava os campos editáveis do fornecedor.
func (r *FornecedorRepo) Update(ctx context.Context, fornecedor *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores
		SET nome = $3, telefone = $4, prazo_entrega_dias = $5, updated_at = $6
		WHERE id = $1 AND estabelecimento_id = $2`
	_, err := r.q.Exec(ctx, query,
		fornecedor.ID, fornecedor.EstabelecimentoID, fornecedor.Nome,
		fornecedor.Telefone, fornecedor.PrazoEntregaDias, fornecedor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fornecedor: %w", err)
	}
	return nil
}

// ListCursor lista fornecedores por cursor, ordenados por nome ASC, id ASC,
// com a contagem de produtos vinculados. Busca limit+1 linhas para hasMore.
func (r *FornecedorRepo) ListCursor(ctx context.Context, estabelecimentoID string, cursor *string, limit int) (*repository.FornecedorPage, error) {
	query := `
		SELECT f.id, f.estabelecimento_id, f.nome, f.telefone, f.prazo_entrega_dias,
			f.created_at, f.updated_at, COUNT(p.id)::int AS total_produtos
		FROM fornecedores f
		LEFT JOIN produtos p ON p.fornecedor_id = f.id
		WHERE f.estabelecimento_id = $1`
	args := []any{estabelecimentoID}
	if cursor != nil && *cursor != "" {
		args = append(args, *cursor)
		query += fmt.Sprintf(` AND (f.nome, f.id) > (SELECT nome, id FROM fornecedores WHERE id = $%d)`, len(args))
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(` GROUP BY f.id ORDER BY f.nome ASC, f.id ASC LIMIT $%d`, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()

	var list []*repository.FornecedorComContagem
	for rows.Next() {
		var f repository.FornecedorComContagem
		if err := rows.Scan(
			&f.ID, &f.EstabelecimentoID, &f.Nome, &f.Telefone,
			&f.PrazoEntregaDias, &f.CreatedAt, &f.UpdatedAt, &f.TotalProdutos,
		); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}

	page := &repository.FornecedorPage{HasMore: len(list) > limit}
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

// Delete remove o fornecedor do estabelecimento.
func (r *FornecedorRepo) Delete(ctx context.Context, id, estabelecimentoID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM fornecedores WHERE id = $1 AND estabelecimento_id = $2`, id, estabelecimentoID)
	if err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	return nil
}
