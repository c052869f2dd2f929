package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrEstabelecimentoNotFound = errors.New("Estabelecimento não encontrado")
	ErrProdutoNotFound         = errors.New("Produto não encontrado")
	ErrFornecedorNotFound      = errors.New("Fornecedor não encontrado")
	ErrUsuarioNotFound         = errors.New("Usuário não encontrado")
	ErrEstoqueInsuficiente     = errors.New("Estoque insuficiente")
	ErrSenhaInvalida           = errors.New("Senha inválida")
	ErrEmailJaCadastrado       = errors.New("Email já cadastrado")
	ErrEntradaInvalida         = errors.New("entrada inválida")
	ErrNaoAutorizado           = errors.New("não autorizado")
)

// Recursos sujeitos a limite de plano.
const (
	RecursoProduto      = "produto"
	RecursoUsuario      = "usuario"
	RecursoMovimentacao = "movimentacao"
)

// LimiteExcedidoError indica que o estabelecimento FREE atingiu o teto de um recurso.
// Carrega o recurso e o limite efetivo para que o handler monte a mensagem ao cliente.
type LimiteExcedidoError struct {
	Recurso string
	Limite  int
}

func (e *LimiteExcedidoError) Error() string {
	switch e.Recurso {
	case RecursoProduto:
		return fmt.Sprintf("Limite do plano FREE atingido (%d produtos). Faça upgrade para PRO.", e.Limite)
	case RecursoUsuario:
		return fmt.Sprintf("Limite do plano FREE atingido (%d usuário). Faça upgrade para PRO.", e.Limite)
	case RecursoMovimentacao:
		return fmt.Sprintf("Limite do plano FREE atingido (%d movimentações por mês). Faça upgrade para PRO.", e.Limite)
	}
	return fmt.Sprintf("Limite do plano FREE atingido (%d). Faça upgrade para PRO.", e.Limite)
}

// IsLimiteExcedido verifica se err é um LimiteExcedidoError.
func IsLimiteExcedido(err error) bool {
	var le *LimiteExcedidoError
	return errors.As(err, &le)
}
