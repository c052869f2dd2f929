package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coderonin/barstock-api/internal/application/auth"
	"github.com/coderonin/barstock-api/internal/application/estoque"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

// Garante que TxRunner implementa estoque.TxRunner e auth.CadastroTxRunner.
var _ estoque.TxRunner = (*TxRunner)(nil)
var _ auth.CadastroTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback (unidade de trabalho do razão de movimentações).
func (r *TxRunner) Run(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	movimentacaoRepo repository.MovimentacaoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	produtoRepo := NewProdutoRepository(tx)
	movimentacaoRepo := NewMovimentacaoRepository(tx)

	if err := fn(produtoRepo, movimentacaoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCadastro inicia uma transação com os repositórios do registro
// (estabelecimento + usuário criados juntos ou nenhum).
func (r *TxRunner) RunCadastro(ctx context.Context, fn func(
	estabelecimentoRepo repository.EstabelecimentoRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	estabelecimentoRepo := NewEstabelecimentoRepository(tx)
	usuarioRepo := NewUsuarioRepository(tx)

	if err := fn(estabelecimentoRepo, usuarioRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
