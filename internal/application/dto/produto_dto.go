package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProdutoInput corpo de criação/edição de produto. Os clientes históricos enviam
// chaves em snake_case ou camelCase; os dois conjuntos de campos são aceitos e
// Normalizar colapsa tudo no esquema canônico antes do caso de uso.
type ProdutoInput struct {
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
	Volume    string `json:"volume"`

	EstoqueAtual  *int             `json:"estoqueAtual"`
	EstoqueMinimo *int             `json:"estoqueMinimo"`
	PrecoCompra   *decimal.Decimal `json:"precoCompra"`
	PrecoVenda    *decimal.Decimal `json:"precoVenda"`
	FornecedorID  *string          `json:"fornecedorId"`

	// Aliases snake_case; têm precedência quando presentes.
	EstoqueAtualSnake  *int             `json:"estoque_atual"`
	EstoqueMinimoSnake *int             `json:"estoque_minimo"`
	PrecoCompraSnake   *decimal.Decimal `json:"preco_compra"`
	PrecoVendaSnake    *decimal.Decimal `json:"preco_venda"`
	FornecedorIDSnake  *string          `json:"fornecedor_id"`
}

// ProdutoCanonico esquema interno único após a normalização de chaves.
// Ponteiros nulos significam "campo não enviado" (relevante no update parcial).
type ProdutoCanonico struct {
	Nome          string
	Categoria     string
	Volume        string
	EstoqueAtual  *int
	EstoqueMinimo *int
	PrecoCompra   *decimal.Decimal
	PrecoVenda    *decimal.Decimal
	FornecedorID  *string
}

// Normalizar colapsa as chaves snake_case/camelCase no esquema canônico.
func (in ProdutoInput) Normalizar() ProdutoCanonico {
	out := ProdutoCanonico{
		Nome:          in.Nome,
		Categoria:     in.Categoria,
		Volume:        in.Volume,
		EstoqueAtual:  coalesce(in.EstoqueAtualSnake, in.EstoqueAtual),
		EstoqueMinimo: coalesce(in.EstoqueMinimoSnake, in.EstoqueMinimo),
		PrecoCompra:   coalesce(in.PrecoCompraSnake, in.PrecoCompra),
		PrecoVenda:    coalesce(in.PrecoVendaSnake, in.PrecoVenda),
		FornecedorID:  coalesce(in.FornecedorIDSnake, in.FornecedorID),
	}
	return out
}

func coalesce[T any](vals ...*T) *T {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

// FornecedorResumoDTO resumo do fornecedor embutido na resposta de produto.
type FornecedorResumoDTO struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// ProdutoResponse produto nas respostas da API.
type ProdutoResponse struct {
	ID            string               `json:"id"`
	Nome          string               `json:"nome"`
	Categoria     string               `json:"categoria"`
	Volume        string               `json:"volume"`
	EstoqueAtual  int                  `json:"estoqueAtual"`
	EstoqueMinimo int                  `json:"estoqueMinimo"`
	PrecoCompra   decimal.Decimal      `json:"precoCompra"`
	PrecoVenda    decimal.Decimal      `json:"precoVenda"`
	Status        string               `json:"status"`
	FornecedorID  *string              `json:"fornecedorId,omitempty"`
	Fornecedor    *FornecedorResumoDTO `json:"fornecedor,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ProdutoListResponse página de produtos com cursor.
type ProdutoListResponse struct {
	Data       []ProdutoResponse `json:"data"`
	NextCursor *string           `json:"nextCursor"`
	HasMore    bool              `json:"hasMore"`
}
