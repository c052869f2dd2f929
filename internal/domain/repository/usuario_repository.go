package repository

import (
	"context"

	"github.com/coderonin/barstock-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario (DIP).
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	CountByEstabelecimento(ctx context.Context, estabelecimentoID string) (int, error)
	Count(ctx context.Context) (int, error)
}
