package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

// DashboardUseCase gera os agregados do painel do estabelecimento.
//
// Fonte de dados: DashboardRepository (consultas read-only). As três famílias
// de consulta rodam em paralelo; leve desatualização entre elas é aceitável.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetData monta o DashboardResponse do estabelecimento.
func (uc *DashboardUseCase) GetData(ctx context.Context, estabelecimentoID string) (*dto.DashboardResponse, error) {
	type contagens struct {
		totalProdutos int
		produtosRepor int
		totalMov      int
		err           error
	}
	type valoracao struct {
		compra decimal.Decimal
		venda  decimal.Decimal
		err    error
	}
	type maisVendido struct {
		produto *repository.ProdutoMaisVendido
		err     error
	}

	contagensCh := make(chan contagens, 1)
	valoracaoCh := make(chan valoracao, 1)
	maisVendidoCh := make(chan maisVendido, 1)

	go func() {
		var c contagens
		c.totalProdutos, c.err = uc.dashboardRepo.CountProdutos(ctx, estabelecimentoID)
		if c.err == nil {
			c.produtosRepor, c.err = uc.dashboardRepo.CountProdutosPorStatus(ctx, estabelecimentoID, entity.StatusRepor)
		}
		if c.err == nil {
			c.totalMov, c.err = uc.dashboardRepo.CountMovimentacoes(ctx, estabelecimentoID)
		}
		contagensCh <- c
	}()
	go func() {
		compra, venda, err := uc.dashboardRepo.ValorEstoque(ctx, estabelecimentoID)
		valoracaoCh <- valoracao{compra, venda, err}
	}()
	go func() {
		produto, err := uc.dashboardRepo.GetProdutoMaisVendido(ctx, estabelecimentoID)
		maisVendidoCh <- maisVendido{produto, err}
	}()

	c := <-contagensCh
	v := <-valoracaoCh
	mv := <-maisVendidoCh

	if c.err != nil {
		return nil, fmt.Errorf("dashboard: contagens: %w", c.err)
	}
	if v.err != nil {
		return nil, fmt.Errorf("dashboard: valoração do estoque: %w", v.err)
	}
	if mv.err != nil {
		return nil, fmt.Errorf("dashboard: produto mais vendido: %w", mv.err)
	}

	resp := &dto.DashboardResponse{
		TotalProdutos:      c.totalProdutos,
		ProdutosRepor:      c.produtosRepor,
		ValorTotalCompra:   v.compra,
		ValorTotalVenda:    v.venda,
		MargemEstimada:     v.venda.Sub(v.compra),
		TotalMovimentacoes: c.totalMov,
	}
	if mv.produto != nil {
		resp.ProdutoMaisVendido = &dto.ProdutoMaisVendidoDTO{
			Nome:              mv.produto.Nome,
			QuantidadeVendida: mv.produto.QuantidadeVendida,
		}
	}
	return resp, nil
}
