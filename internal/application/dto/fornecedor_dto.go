package dto

import "time"

// FornecedorInput corpo de criação/edição de fornecedor (aceita snake_case e camelCase).
type FornecedorInput struct {
	Nome             string `json:"nome"`
	Telefone         string `json:"telefone"`
	PrazoEntregaDias *int   `json:"prazoEntregaDias"`

	PrazoEntregaDiasSnake *int `json:"prazo_entrega_dias"`
}

// PrazoCanonico colapsa prazo_entrega_dias/prazoEntregaDias; padrão 2 dias.
func (in FornecedorInput) PrazoCanonico() int {
	if in.PrazoEntregaDiasSnake != nil {
		return *in.PrazoEntregaDiasSnake
	}
	if in.PrazoEntregaDias != nil {
		return *in.PrazoEntregaDias
	}
	return 2
}

// FornecedorResponse fornecedor nas respostas da API.
type FornecedorResponse struct {
	ID               string    `json:"id"`
	Nome             string    `json:"nome"`
	Telefone         string    `json:"telefone"`
	PrazoEntregaDias int       `json:"prazoEntregaDias"`
	TotalProdutos    int       `json:"totalProdutos"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// FornecedorListResponse página de fornecedores com cursor.
type FornecedorListResponse struct {
	Data       []FornecedorResponse `json:"data"`
	NextCursor *string              `json:"nextCursor"`
	HasMore    bool                 `json:"hasMore"`
}
