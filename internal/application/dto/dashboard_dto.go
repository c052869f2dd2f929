package dto

import "github.com/shopspring/decimal"

// ProdutoMaisVendidoDTO produto com maior volume de saídas.
type ProdutoMaisVendidoDTO struct {
	Nome              string `json:"nome"`
	QuantidadeVendida int    `json:"quantidadeVendida"`
}

// DashboardResponse agregados do painel do estabelecimento.
type DashboardResponse struct {
	TotalProdutos      int                    `json:"totalProdutos"`
	ProdutosRepor      int                    `json:"produtosRepor"`
	ValorTotalCompra   decimal.Decimal        `json:"valorTotalCompra"`
	ValorTotalVenda    decimal.Decimal        `json:"valorTotalVenda"`
	MargemEstimada     decimal.Decimal        `json:"margemEstimada"`
	ProdutoMaisVendido *ProdutoMaisVendidoDTO `json:"produtoMaisVendido"`
	TotalMovimentacoes int                    `json:"totalMovimentacoes"`
}

// AdminDashboardResponse estatísticas globais do sistema (somente ADMIN).
type AdminDashboardResponse struct {
	TotalEstabelecimentos int `json:"totalEstabelecimentos"`
	FreeEstabelecimentos  int `json:"freeEstabelecimentos"`
	ProEstabelecimentos   int `json:"proEstabelecimentos"`
	TotalUsuarios         int `json:"totalUsuarios"`
}
