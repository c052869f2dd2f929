package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/domain"
	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/estoque"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

// LimiteChecker contrato mínimo do motor de cotas usado pelos casos de uso de
// criação guardada. Implementado por *plano.UseCase.
type LimiteChecker interface {
	CheckLimite(ctx context.Context, estabelecimentoID, recurso string) error
}

// ProdutoUseCase CRUD de produtos com gate de plano na criação e derivação de
// status compartilhada com o razão de movimentações.
type ProdutoUseCase struct {
	produtoRepo repository.ProdutoRepository
	limites     LimiteChecker
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(produtoRepo repository.ProdutoRepository, limites LimiteChecker) *ProdutoUseCase {
	return &ProdutoUseCase{produtoRepo: produtoRepo, limites: limites}
}

// Create valida o limite de produtos do plano, aplica os defaults (estoque 0,
// mínimo 5, preços 0) e deriva o status inicial pela regra compartilhada.
func (uc *ProdutoUseCase) Create(ctx context.Context, estabelecimentoID string, in dto.ProdutoInput) (*dto.ProdutoResponse, error) {
	data := in.Normalizar()
	if data.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if err := uc.limites.CheckLimite(ctx, estabelecimentoID, domain.RecursoProduto); err != nil {
		return nil, err
	}

	estoqueAtual := 0
	if data.EstoqueAtual != nil {
		estoqueAtual = *data.EstoqueAtual
	}
	estoqueMinimo := 5
	if data.EstoqueMinimo != nil {
		estoqueMinimo = *data.EstoqueMinimo
	}
	precoCompra := decimal.Zero
	if data.PrecoCompra != nil {
		precoCompra = *data.PrecoCompra
	}
	precoVenda := decimal.Zero
	if data.PrecoVenda != nil {
		precoVenda = *data.PrecoVenda
	}
	var fornecedorID *string
	if data.FornecedorID != nil && *data.FornecedorID != "" {
		fornecedorID = data.FornecedorID
	}

	now := time.Now()
	produto := &entity.Produto{
		ID:                uuid.New().String(),
		EstabelecimentoID: estabelecimentoID,
		FornecedorID:      fornecedorID,
		Nome:              data.Nome,
		Categoria:         data.Categoria,
		Volume:            data.Volume,
		EstoqueAtual:      estoqueAtual,
		EstoqueMinimo:     estoqueMinimo,
		PrecoCompra:       precoCompra,
		PrecoVenda:        precoVenda,
		Status:            estoque.CalcularStatus(estoqueAtual, estoqueMinimo),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.produtoRepo.Create(ctx, produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto, nil), nil
}

// Update edição parcial: campos ausentes mantêm o valor atual. O status só é
// recalculado quando os dois campos de estoque vêm juntos no corpo — edição
// de um campo isolado não passa pela derivação (mesma regra do legado).
func (uc *ProdutoUseCase) Update(ctx context.Context, id, estabelecimentoID string, in dto.ProdutoInput) (*dto.ProdutoResponse, error) {
	produto, err := uc.produtoRepo.GetByID(ctx, id, estabelecimentoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrProdutoNotFound
	}

	data := in.Normalizar()
	if data.Nome != "" {
		produto.Nome = data.Nome
	}
	if data.Categoria != "" {
		produto.Categoria = data.Categoria
	}
	if data.Volume != "" {
		produto.Volume = data.Volume
	}
	if data.EstoqueAtual != nil {
		produto.EstoqueAtual = *data.EstoqueAtual
	}
	if data.EstoqueMinimo != nil {
		produto.EstoqueMinimo = *data.EstoqueMinimo
	}
	if data.PrecoCompra != nil {
		produto.PrecoCompra = *data.PrecoCompra
	}
	if data.PrecoVenda != nil {
		produto.PrecoVenda = *data.PrecoVenda
	}
	if data.FornecedorID != nil {
		if *data.FornecedorID == "" {
			produto.FornecedorID = nil
		} else {
			produto.FornecedorID = data.FornecedorID
		}
	}
	if data.EstoqueAtual != nil && data.EstoqueMinimo != nil {
		produto.Status = estoque.CalcularStatus(produto.EstoqueAtual, produto.EstoqueMinimo)
	}
	produto.UpdatedAt = time.Now()

	if err := uc.produtoRepo.Update(ctx, produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto, nil), nil
}

// List retorna a página de produtos por cursor (created_at DESC, id DESC).
func (uc *ProdutoUseCase) List(ctx context.Context, estabelecimentoID string, cursor *string, limit int) (*dto.ProdutoListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	page, err := uc.produtoRepo.ListCursor(ctx, estabelecimentoID, cursor, limit)
	if err != nil {
		return nil, err
	}
	out := &dto.ProdutoListResponse{
		Data:       make([]dto.ProdutoResponse, 0, len(page.Data)),
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}
	for _, p := range page.Data {
		out.Data = append(out.Data, *toProdutoResponse(&p.Produto, p.Fornecedor))
	}
	return out, nil
}

// Delete remove o produto do estabelecimento.
func (uc *ProdutoUseCase) Delete(ctx context.Context, id, estabelecimentoID string) error {
	return uc.produtoRepo.Delete(ctx, id, estabelecimentoID)
}

func toProdutoResponse(p *entity.Produto, fornecedor *repository.FornecedorResumo) *dto.ProdutoResponse {
	resp := &dto.ProdutoResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		Categoria:     p.Categoria,
		Volume:        p.Volume,
		EstoqueAtual:  p.EstoqueAtual,
		EstoqueMinimo: p.EstoqueMinimo,
		PrecoCompra:   p.PrecoCompra,
		PrecoVenda:    p.PrecoVenda,
		Status:        p.Status,
		FornecedorID:  p.FornecedorID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if fornecedor != nil {
		resp.Fornecedor = &dto.FornecedorResumoDTO{ID: fornecedor.ID, Nome: fornecedor.Nome}
	}
	return resp
}
