package repository

import (
	"context"

	"github.com/coderonin/barstock-api/internal/domain/entity"
)

// ProdutoPage página de produtos com cursor.
type ProdutoPage struct {
	Data       []*ProdutoComFornecedor
	NextCursor *string
	HasMore    bool
}

// ProdutoComFornecedor produto com o resumo do fornecedor para listagens.
type ProdutoComFornecedor struct {
	entity.Produto
	Fornecedor *FornecedorResumo
}

// FornecedorResumo resumo do fornecedor embutido na listagem de produtos.
type FornecedorResumo struct {
	ID   string
	Nome string
}

// ProdutoRepository define o porto de persistência para Produto (DIP).
// Todas as consultas recebem o estabelecimentoID: um produto de outro tenant
// é indistinguível de inexistente.
type ProdutoRepository interface {
	Create(ctx context.Context, produto *entity.Produto) error
	GetByID(ctx context.Context, id, estabelecimentoID string) (*entity.Produto, error)
	// GetByIDForUpdate bloqueia a linha do produto (SELECT FOR UPDATE); usar dentro de transação.
	GetByIDForUpdate(ctx context.Context, id, estabelecimentoID string) (*entity.Produto, error)
	Update(ctx context.Context, produto *entity.Produto) error
	// UpdateEstoqueStatus grava apenas estoque_atual e status (caminho do razão).
	UpdateEstoqueStatus(ctx context.Context, id string, estoqueAtual int, status string) error
	ListCursor(ctx context.Context, estabelecimentoID string, cursor *string, limit int) (*ProdutoPage, error)
	Delete(ctx context.Context, id, estabelecimentoID string) error
	CountByEstabelecimento(ctx context.Context, estabelecimentoID string) (int, error)
}
