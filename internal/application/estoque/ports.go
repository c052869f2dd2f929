package estoque

import (
	"context"

	"github.com/coderonin/barstock-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante a atomicidade do razão: produto
// atualizado e movimentação inserida juntos, ou nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		movimentacaoRepo repository.MovimentacaoRepository,
	) error) error
}

// LimiteChecker contrato mínimo do motor de cotas usado pelo razão.
// Implementado por *plano.UseCase; a interface permite fakes nos testes.
type LimiteChecker interface {
	CheckLimite(ctx context.Context, estabelecimentoID, recurso string) error
}
