package entity

import "time"

// Fornecedor representa um fornecedor do estabelecimento, referenciado
// opcionalmente pelos produtos.
type Fornecedor struct {
	ID                string
	EstabelecimentoID string
	Nome              string
	Telefone          string
	PrazoEntregaDias  int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
