package repository

import (
	"context"
	"time"

	"github.com/coderonin/barstock-api/internal/domain/entity"
)

// MovimentacaoPage página de movimentações com cursor.
type MovimentacaoPage struct {
	Data       []*MovimentacaoComProduto
	NextCursor *string
	HasMore    bool
}

// MovimentacaoComProduto movimentação com o resumo do produto para listagens.
type MovimentacaoComProduto struct {
	entity.Movimentacao
	Produto entity.MovimentacaoProduto
}

// MovimentacaoRepository define o porto de persistência para Movimentacao (DIP).
// O razão é imutável: não há Update nem Delete.
type MovimentacaoRepository interface {
	Create(ctx context.Context, mov *entity.Movimentacao) error
	// ListCursor ordena por created_at DESC, id DESC; produtoID opcional filtra por produto.
	ListCursor(ctx context.Context, estabelecimentoID string, cursor *string, limit int, produtoID string) (*MovimentacaoPage, error)
	CountByEstabelecimento(ctx context.Context, estabelecimentoID string) (int, error)
	// CountByPeriodo conta movimentações criadas no intervalo [de, ate] (limite mensal do plano).
	CountByPeriodo(ctx context.Context, estabelecimentoID string, de, ate time.Time) (int, error)
}
