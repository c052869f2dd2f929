package repository

import (
	"context"

	"github.com/coderonin/barstock-api/internal/domain/entity"
)

// FornecedorPage página de fornecedores com cursor.
type FornecedorPage struct {
	Data       []*FornecedorComContagem
	NextCursor *string
	HasMore    bool
}

// FornecedorComContagem fornecedor com a contagem de produtos vinculados.
type FornecedorComContagem struct {
	entity.Fornecedor
	TotalProdutos int
}

// FornecedorRepository define o porto de persistência para Fornecedor (DIP).
type FornecedorRepository interface {
	Create(ctx context.Context, fornecedor *entity.Fornecedor) error
	GetByID(ctx context.Context, id, estabelecimentoID string) (*entity.Fornecedor, error)
	Update(ctx context.Context, fornecedor *entity.Fornecedor) error
	// ListCursor ordena por nome ASC, id ASC (desempate estável).
	ListCursor(ctx context.Context, estabelecimentoID string, cursor *string, limit int) (*FornecedorPage, error)
	Delete(ctx context.Context, id, estabelecimentoID string) error
}
