package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderonin/barstock-api/internal/domain/entity"
	"github.com/coderonin/barstock-api/internal/domain/repository"
)

func produtosComID(ids ...string) []*repository.ProdutoComFornecedor {
	out := make([]*repository.ProdutoComFornecedor, 0, len(ids))
	for _, id := range ids {
		out = append(out, &repository.ProdutoComFornecedor{Produto: entity.Produto{ID: id}})
	}
	return out
}

// O adaptador busca limit+1 linhas; o helper corta o excedente e aponta o
// cursor para o último item devolvido.
func TestPaginarProdutos_ComExcedente(t *testing.T) {
	page := paginarProdutos(produtosComID("a", "b", "c"), 2)

	assert.Len(t, page.Data, 2)
	assert.True(t, page.HasMore)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "b", *page.NextCursor)
}

func TestPaginarProdutos_UltimaPagina(t *testing.T) {
	page := paginarProdutos(produtosComID("c"), 2)

	assert.Len(t, page.Data, 1)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestPaginarProdutos_Vazia(t *testing.T) {
	page := paginarProdutos(nil, 2)

	assert.Empty(t, page.Data)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}
