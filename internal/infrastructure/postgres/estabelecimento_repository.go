package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

var _ repository.EstabelecimentoRepository = (*EstabelecimentoRepo)(nil)

// EstabelecimentoRepo implementação do porto sobre PostgreSQL (aceita pool ou tx).
type EstabelecimentoRepo struct {
	q Querier
}

// NewEstabelecimentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEstabelecimentoRepository(q Querier) *EstabelecimentoRepo {
	return &EstabelecimentoRepo{q: q}
}

// Create persiste um novo estabelecimento.
func (r *EstabelecimentoRepo) Create(ctx context.Context, est *entity.Estabelecimento) error {
	query := `
		INSERT INTO estabelecimentos (id, nome, ativo, plano, limite_produtos, limite_usuarios, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		est.ID, est.Nome, est.Ativo, est.Plano,
		est.LimiteProdutos, est.LimiteUsuarios, est.CreatedAt, est.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert estabelecimento: %w", err)
	}
	return nil
}

// GetByID obtém um estabelecimento por ID. Retorna nil, nil se não existir.
func (r *EstabelecimentoRepo) GetByID(ctx context.Context, id string) (*entity.Estabelecimento, error) {
	query := `
		SELECT id, nome, ativo, plano, limite_produtos, limite_usuarios, created_at, updated_at
		FROM estabelecimentos WHERE id = $1`
	var e entity.Estabelecimento
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Nome, &e.Ativo, &e.Plano,
		&e.LimiteProdutos, &e.LimiteUsuarios, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estabelecimento: %w", err)
	}
	return &e, nil
}

// Count conta todos os estabelecimentos do sistema.
func (r *EstabelecimentoRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM estabelecimentos`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count estabelecimentos: %w", err)
	}
	return n, nil
}

// CountByPlano conta estabelecimentos por plano (FREE/PRO).
func (r *EstabelecimentoRepo) CountByPlano(ctx context.Context, plano string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM estabelecimentos WHERE plano = $1`, plano).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count estabelecimentos por plano: %w", err)
	}
	return n, nil
}
