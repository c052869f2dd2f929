package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/domain"
	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

// FornecedorUseCase CRUD de fornecedores do estabelecimento.
type FornecedorUseCase struct {
	fornecedorRepo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(fornecedorRepo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{fornecedorRepo: fornecedorRepo}
}

// Create cria um fornecedor; prazo de entrega padrão é 2 dias.
func (uc *FornecedorUseCase) Create(ctx context.Context, estabelecimentoID string, in dto.FornecedorInput) (*dto.FornecedorResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	fornecedor := &entity.Fornecedor{
		ID:                uuid.New().String(),
		EstabelecimentoID: estabelecimentoID,
		Nome:              in.Nome,
		Telefone:          in.Telefone,
		PrazoEntregaDias:  in.PrazoCanonico(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.fornecedorRepo.Create(ctx, fornecedor); err != nil {
		return nil, err
	}
	return toFornecedorResponse(fornecedor, 0), nil
}

// Update edição parcial de fornecedor.
func (uc *FornecedorUseCase) Update(ctx context.Context, id, estabelecimentoID string, in dto.FornecedorInput) (*dto.FornecedorResponse, error) {
	fornecedor, err := uc.fornecedorRepo.GetByID(ctx, id, estabelecimentoID)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, domain.ErrFornecedorNotFound
	}
	if in.Nome != "" {
		fornecedor.Nome = in.Nome
	}
	if in.Telefone != "" {
		fornecedor.Telefone = in.Telefone
	}
	if in.PrazoEntregaDias != nil || in.PrazoEntregaDiasSnake != nil {
		fornecedor.PrazoEntregaDias = in.PrazoCanonico()
	}
	fornecedor.UpdatedAt = time.Now()
	if err := uc.fornecedorRepo.Update(ctx, fornecedor); err != nil {
		return nil, err
	}
	return toFornecedorResponse(fornecedor, 0), nil
}

// List retorna a página de fornecedores por cursor (nome ASC, id ASC), com a
// contagem de produtos vinculados.
func (uc *FornecedorUseCase) List(ctx context.Context, estabelecimentoID string, cursor *string, limit int) (*dto.FornecedorListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	page, err := uc.fornecedorRepo.ListCursor(ctx, estabelecimentoID, cursor, limit)
	if err != nil {
		return nil, err
	}
	out := &dto.FornecedorListResponse{
		Data:       make([]dto.FornecedorResponse, 0, len(page.Data)),
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}
	for _, f := range page.Data {
		out.Data = append(out.Data, *toFornecedorResponse(&f.Fornecedor, f.TotalProdutos))
	}
	return out, nil
}

// Delete remove o fornecedor do estabelecimento.
func (uc *FornecedorUseCase) Delete(ctx context.Context, id, estabelecimentoID string) error {
	return uc.fornecedorRepo.Delete(ctx, id, estabelecimentoID)
}

func toFornecedorResponse(f *entity.Fornecedor, totalProdutos int) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:               f.ID,
		Nome:             f.Nome,
		Telefone:         f.Telefone,
		PrazoEntregaDias: f.PrazoEntregaDias,
		TotalProdutos:    totalProdutos,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}
