package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/application/usecase"
	"github.com/coderonin/barstock-api/internal/domain"
	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

type memProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func newMemProdutoRepo() *memProdutoRepo {
	return &memProdutoRepo{produtos: make(map[string]*entity.Produto)}
}

func (r *memProdutoRepo) Create(ctx context.Context, p *entity.Produto) error {
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *memProdutoRepo) GetByID(ctx context.Context, id, estabelecimentoID string) (*entity.Produto, error) {
	p, ok := r.produtos[id]
	if !ok || p.EstabelecimentoID != estabelecimentoID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProdutoRepo) GetByIDForUpdate(ctx context.Context, id, estabelecimentoID string) (*entity.Produto, error) {
	return r.GetByID(ctx, id, estabelecimentoID)
}

func (r *memProdutoRepo) Update(ctx context.Context, p *entity.Produto) error {
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *memProdutoRepo) UpdateEstoqueStatus(ctx context.Context, id string, estoqueAtual int, status string) error {
	p := r.produtos[id]
	p.EstoqueAtual = estoqueAtual
	p.Status = status
	return nil
}

func (r *memProdutoRepo) ListCursor(ctx context.Context, estabelecimentoID string, cursor *string, limit int) (*repository.ProdutoPage, error) {
	return &repository.ProdutoPage{}, nil
}

func (r *memProdutoRepo) Delete(ctx context.Context, id, estabelecimentoID string) error {
	delete(r.produtos, id)
	return nil
}

func (r *memProdutoRepo) CountByEstabelecimento(ctx context.Context, estabelecimentoID string) (int, error) {
	return len(r.produtos), nil
}

type allowAllLimites struct{}

func (allowAllLimites) CheckLimite(ctx context.Context, estabelecimentoID, recurso string) error {
	return nil
}

type negaLimites struct{}

func (negaLimites) CheckLimite(ctx context.Context, estabelecimentoID, recurso string) error {
	return &domain.LimiteExcedidoError{Recurso: recurso, Limite: 50}
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutoCreate_DefaultsEStatusDerivado(t *testing.T) {
	repo := newMemProdutoRepo()
	uc := usecase.NewProdutoUseCase(repo, allowAllLimites{})

	out, err := uc.Create(context.Background(), "est-1", dto.ProdutoInput{Nome: "Gin Nacional"})
	require.NoError(t, err)

	// Defaults: estoque 0, mínimo 5, preços zero → 0 <= 5 deriva Repor.
	assert.Equal(t, 0, out.EstoqueAtual)
	assert.Equal(t, 5, out.EstoqueMinimo)
	assert.Equal(t, entity.StatusRepor, out.Status)
	assert.True(t, out.PrecoCompra.IsZero())
	assert.True(t, out.PrecoVenda.IsZero())
	assert.Nil(t, out.FornecedorID)
}

func TestProdutoCreate_EstoqueInicialDerivaStatus(t *testing.T) {
	repo := newMemProdutoRepo()
	uc := usecase.NewProdutoUseCase(repo, allowAllLimites{})

	out, err := uc.Create(context.Background(), "est-1", dto.ProdutoInput{
		Nome:          "Vodka",
		EstoqueAtual:  intPtr(30),
		EstoqueMinimo: intPtr(10),
		PrecoCompra:   decPtr("28.00"),
		PrecoVenda:    decPtr("55.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOK, out.Status)
}

func TestProdutoCreate_AliasSnakeCaseTemPrecedencia(t *testing.T) {
	repo := newMemProdutoRepo()
	uc := usecase.NewProdutoUseCase(repo, allowAllLimites{})

	out, err := uc.Create(context.Background(), "est-1", dto.ProdutoInput{
		Nome:              "Rum",
		EstoqueAtual:      intPtr(1),
		EstoqueAtualSnake: intPtr(20),
		EstoqueMinimo:     intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 20, out.EstoqueAtual)
}

func TestProdutoCreate_SemNome_EntradaInvalida(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newMemProdutoRepo(), allowAllLimites{})
	_, err := uc.Create(context.Background(), "est-1", dto.ProdutoInput{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestProdutoCreate_LimiteDoPlanoBloqueia(t *testing.T) {
	repo := newMemProdutoRepo()
	uc := usecase.NewProdutoUseCase(repo, negaLimites{})

	_, err := uc.Create(context.Background(), "est-1", dto.ProdutoInput{Nome: "Whisky"})
	assert.True(t, domain.IsLimiteExcedido(err))
	assert.Empty(t, repo.produtos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func produtoExistente(repo *memProdutoRepo) *entity.Produto {
	p := &entity.Produto{
		ID:                "p1",
		EstabelecimentoID: "est-1",
		Nome:              "Cachaça Artesanal",
		Categoria:         "Destilado",
		EstoqueAtual:      20,
		EstoqueMinimo:     5,
		PrecoCompra:       decimal.RequireFromString("15.00"),
		PrecoVenda:        decimal.RequireFromString("32.00"),
		Status:            entity.StatusOK,
	}
	_ = repo.Create(context.Background(), p)
	return p
}

func TestProdutoUpdate_ParcialMantemCamposAusentes(t *testing.T) {
	repo := newMemProdutoRepo()
	produtoExistente(repo)
	uc := usecase.NewProdutoUseCase(repo, allowAllLimites{})

	out, err := uc.Update(context.Background(), "p1", "est-1", dto.ProdutoInput{Nome: "Cachaça Premium"})
	require.NoError(t, err)

	assert.Equal(t, "Cachaça Premium", out.Nome)
	assert.Equal(t, "Destilado", out.Categoria)
	assert.Equal(t, 20, out.EstoqueAtual)
	assert.Equal(t, entity.StatusOK, out.Status)
}

func TestProdutoUpdate_StatusSoRecalculaComOsDoisCamposDeEstoque(t *testing.T) {
	repo := newMemProdutoRepo()
	produtoExistente(repo)
	uc := usecase.NewProdutoUseCase(repo, allowAllLimites{})

	// Só estoque_atual: o valor muda, mas o status gravado permanece.
	out, err := uc.Update(context.Background(), "p1", "est-1", dto.ProdutoInput{EstoqueAtual: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, out.EstoqueAtual)
	assert.Equal(t, entity.StatusOK, out.Status)

	// Os dois campos juntos: o status é rederivado.
	out, err = uc.Update(context.Background(), "p1", "est-1", dto.ProdutoInput{
		EstoqueAtual:  intPtr(2),
		EstoqueMinimo: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRepor, out.Status)
}

func TestProdutoUpdate_LimparFornecedor(t *testing.T) {
	repo := newMemProdutoRepo()
	p := produtoExistente(repo)
	fornecedorID := "f1"
	p.FornecedorID = &fornecedorID
	_ = repo.Update(context.Background(), p)
	uc := usecase.NewProdutoUseCase(repo, allowAllLimites{})

	out, err := uc.Update(context.Background(), "p1", "est-1", dto.ProdutoInput{FornecedorID: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, out.FornecedorID)
}

func TestProdutoUpdate_OutroTenant_NotFound(t *testing.T) {
	repo := newMemProdutoRepo()
	produtoExistente(repo)
	uc := usecase.NewProdutoUseCase(repo, allowAllLimites{})

	_, err := uc.Update(context.Background(), "p1", "est-2", dto.ProdutoInput{Nome: "X"})
	assert.ErrorIs(t, err, domain.ErrProdutoNotFound)
}
