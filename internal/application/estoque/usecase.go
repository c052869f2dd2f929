// Package estoque contém o razão de movimentações: o caminho transacional que
// valida a requisição, recalcula estoque e status do produto, calcula a
// valoração monetária e persiste tudo de forma atômica.
package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/domain"
	"github.com/coderonin/barstock-api/internal/domain/entity"
	domainestoque "github.com/coderonin/barstock-api/internal/domain/estoque"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

// MovimentacaoUseCase registra movimentações de estoque de forma transacional
// (bloqueio de linha via SELECT FOR UPDATE) e lista o razão com cursor.
type MovimentacaoUseCase struct {
	txRunner         TxRunner
	movimentacaoRepo repository.MovimentacaoRepository
	limites          LimiteChecker
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(
	txRunner TxRunner,
	movimentacaoRepo repository.MovimentacaoRepository,
	limites LimiteChecker,
) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{
		txRunner:         txRunner,
		movimentacaoRepo: movimentacaoRepo,
		limites:          limites,
	}
}

// Registrar valida o limite do plano e executa a unidade de trabalho do razão
// dentro de uma transação: busca o produto com lock de linha, recalcula estoque
// e status, calcula a valoração e persiste a atualização do produto junto com a
// nova movimentação. Commit dos dois efeitos ou de nenhum.
//
// O check de limite é consultivo e roda antes da transação; perto do teto,
// requisições concorrentes podem ambas passar — tolerância documentada.
func (uc *MovimentacaoUseCase) Registrar(ctx context.Context, estabelecimentoID string, in dto.CreateMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	produtoID := in.ProdutoIDCanonico()
	if produtoID == "" || in.Tipo == "" || in.Quantidade <= 0 {
		return nil, domain.ErrEntradaInvalida
	}

	if err := uc.limites.CheckLimite(ctx, estabelecimentoID, domain.RecursoMovimentacao); err != nil {
		return nil, err
	}

	var resp *dto.MovimentacaoResponse
	err := uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		movimentacaoRepo repository.MovimentacaoRepository,
	) error {
		// Lock de linha: duas movimentações concorrentes no mesmo produto não
		// podem ler o mesmo estoque e gravar um novo valor incorreto.
		produto, err := produtoRepo.GetByIDForUpdate(ctx, produtoID, estabelecimentoID)
		if err != nil {
			return err
		}
		if produto == nil {
			// Produto de outro tenant é indistinguível de inexistente.
			return domain.ErrProdutoNotFound
		}

		novoEstoque := produto.EstoqueAtual
		switch {
		case domainestoque.EhEntrada(in.Tipo):
			novoEstoque += in.Quantidade
		case domainestoque.EhSaida(in.Tipo):
			if produto.EstoqueAtual < in.Quantidade {
				return domain.ErrEstoqueInsuficiente
			}
			novoEstoque -= in.Quantidade
		default:
			// Tipo não reconhecido: registra a movimentação sem alterar o
			// estoque (comportamento herdado, mantido deliberadamente).
		}

		novoStatus := domainestoque.CalcularStatus(novoEstoque, produto.EstoqueMinimo)

		// Saída vale pelo preço de venda; qualquer outro tipo (inclusive
		// Entrada) pelo preço de compra.
		valorUnitario := produto.PrecoCompra
		if domainestoque.EhSaida(in.Tipo) {
			valorUnitario = produto.PrecoVenda
		}
		valorTotal := decimal.NewFromInt(int64(in.Quantidade)).Mul(valorUnitario)

		if err := produtoRepo.UpdateEstoqueStatus(ctx, produto.ID, novoEstoque, novoStatus); err != nil {
			return err
		}

		now := time.Now()
		mov := &entity.Movimentacao{
			ID:                uuid.New().String(),
			EstabelecimentoID: estabelecimentoID,
			ProdutoID:         produto.ID,
			Tipo:              in.Tipo, // valor original, não normalizado
			Quantidade:        in.Quantidade,
			Observacao:        in.Observacao,
			ValorUnitario:     valorUnitario,
			ValorTotal:        valorTotal,
			Data:              now,
			CreatedAt:         now,
		}
		if err := movimentacaoRepo.Create(ctx, mov); err != nil {
			return err
		}
		resp = toMovimentacaoResponse(mov, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Listar retorna o razão paginado por cursor (created_at DESC, id DESC), com
// filtro opcional por produto.
func (uc *MovimentacaoUseCase) Listar(ctx context.Context, estabelecimentoID string, cursor *string, limit int, produtoID string) (*dto.MovimentacaoListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	page, err := uc.movimentacaoRepo.ListCursor(ctx, estabelecimentoID, cursor, limit, produtoID)
	if err != nil {
		return nil, err
	}
	out := &dto.MovimentacaoListResponse{
		Data:       make([]dto.MovimentacaoResponse, 0, len(page.Data)),
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}
	for _, m := range page.Data {
		produto := m.Produto
		out.Data = append(out.Data, *toMovimentacaoResponse(&m.Movimentacao, &produto))
	}
	return out, nil
}

func toMovimentacaoResponse(m *entity.Movimentacao, produto *entity.MovimentacaoProduto) *dto.MovimentacaoResponse {
	resp := &dto.MovimentacaoResponse{
		ID:            m.ID,
		ProdutoID:     m.ProdutoID,
		Tipo:          m.Tipo,
		Quantidade:    m.Quantidade,
		Observacao:    m.Observacao,
		ValorUnitario: m.ValorUnitario,
		ValorTotal:    m.ValorTotal,
		Data:          m.Data,
		CreatedAt:     m.CreatedAt,
	}
	if produto != nil {
		resp.Produto = &dto.MovimentacaoProdutoDTO{
			ID:        produto.ID,
			Nome:      produto.Nome,
			Categoria: produto.Categoria,
		}
	}
	return resp
}
