package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coderonin/barstock-api/internal/domain"
	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL (aceita pool ou tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário. Email é único em todo o sistema.
func (r *UsuarioRepo) Create(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, estabelecimento_id, nome, email, senha_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		usuario.ID, usuario.EstabelecimentoID, usuario.Nome, usuario.Email,
		usuario.SenhaHash, usuario.Role, usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID. Retorna nil, nil se não existir.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

// GetByEmail obtém um usuário pelo email (único). Retorna nil, nil se não existir.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *UsuarioRepo) getBy(ctx context.Context, where string, arg any) (*entity.Usuario, error) {
	query := `
		SELECT id, estabelecimento_id, nome, email, senha_hash, role, created_at, updated_at
		FROM usuarios ` + where
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.EstabelecimentoID, &u.Nome, &u.Email,
		&u.SenhaHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// CountByEstabelecimento conta usuários do estabelecimento (limite de plano).
func (r *UsuarioRepo) CountByEstabelecimento(ctx context.Context, estabelecimentoID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios WHERE estabelecimento_id = $1`, estabelecimentoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return n, nil
}

// Count conta todos os usuários do sistema (painel admin).
func (r *UsuarioRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return n, nil
}
