package usecase

import (
	"context"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/domain"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

// EstabelecimentoUseCase leitura do estabelecimento do token.
type EstabelecimentoUseCase struct {
	estabelecimentoRepo repository.EstabelecimentoRepository
}

// NewEstabelecimentoUseCase constrói o caso de uso.
func NewEstabelecimentoUseCase(estabelecimentoRepo repository.EstabelecimentoRepository) *EstabelecimentoUseCase {
	return &EstabelecimentoUseCase{estabelecimentoRepo: estabelecimentoRepo}
}

// GetMe devolve o estabelecimento do token junto com a identidade autenticada.
func (uc *EstabelecimentoUseCase) GetMe(ctx context.Context, estabelecimentoID, userID, role string) (*dto.EstabelecimentoMeResponse, error) {
	est, err := uc.estabelecimentoRepo.GetByID(ctx, estabelecimentoID)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrEstabelecimentoNotFound
	}
	return &dto.EstabelecimentoMeResponse{
		ID:             est.ID,
		Nome:           est.Nome,
		Plano:          est.Plano,
		LimiteProdutos: est.LimiteProdutos,
		LimiteUsuarios: est.LimiteUsuarios,
		UserID:         userID,
		Role:           role,
		CreatedAt:      est.CreatedAt,
	}, nil
}
