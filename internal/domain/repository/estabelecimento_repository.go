package repository

import (
	"context"

	"github.com/coderonin/barstock-api/internal/domain/entity"
)

// EstabelecimentoRepository define o porto de persistência para Estabelecimento (DIP).
type EstabelecimentoRepository interface {
	Create(ctx context.Context, est *entity.Estabelecimento) error
	GetByID(ctx context.Context, id string) (*entity.Estabelecimento, error)
	Count(ctx context.Context) (int, error)
	CountByPlano(ctx context.Context, plano string) (int, error)
}
