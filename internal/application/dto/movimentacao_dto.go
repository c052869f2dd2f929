package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovimentacaoRequest corpo de registro de movimentação.
// Tipo aceita "Entrada"/"Saída" com ou sem acento, em qualquer caixa.
type CreateMovimentacaoRequest struct {
	ProdutoID  string `json:"produtoId"`
	Tipo       string `json:"tipo"`
	Quantidade int    `json:"quantidade"`
	Observacao string `json:"observacao"`

	// Alias snake_case; tem precedência quando presente.
	ProdutoIDSnake string `json:"produto_id"`
}

// ProdutoIDCanonico colapsa produto_id/produtoId na forma canônica.
func (in CreateMovimentacaoRequest) ProdutoIDCanonico() string {
	if in.ProdutoIDSnake != "" {
		return in.ProdutoIDSnake
	}
	return in.ProdutoID
}

// MovimentacaoProdutoDTO resumo do produto embutido na listagem.
type MovimentacaoProdutoDTO struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
}

// MovimentacaoResponse movimentação nas respostas da API.
type MovimentacaoResponse struct {
	ID            string                  `json:"id"`
	ProdutoID     string                  `json:"produtoId"`
	Tipo          string                  `json:"tipo"`
	Quantidade    int                     `json:"quantidade"`
	Observacao    string                  `json:"observacao,omitempty"`
	ValorUnitario decimal.Decimal         `json:"valorUnitario"`
	ValorTotal    decimal.Decimal         `json:"valorTotal"`
	Data          time.Time               `json:"data"`
	CreatedAt     time.Time               `json:"createdAt"`
	Produto       *MovimentacaoProdutoDTO `json:"produto,omitempty"`
}

// MovimentacaoListResponse página de movimentações com cursor.
type MovimentacaoListResponse struct {
	Data       []MovimentacaoResponse `json:"data"`
	NextCursor *string                `json:"nextCursor"`
	HasMore    bool                   `json:"hasMore"`
}
