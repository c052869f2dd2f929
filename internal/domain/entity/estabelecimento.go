package entity

import "time"

// Planos de assinatura disponíveis.
const (
	PlanoFree = "FREE"
	PlanoPro  = "PRO"
)

// Limites padrão do plano FREE (colunas com default no schema).
const (
	LimiteProdutosFree = 50
	LimiteUsuariosFree = 1
)

// Estabelecimento representa o tenant do sistema: dono de usuários, produtos,
// fornecedores e movimentações. Todo acesso a dados é filtrado pelo seu ID.
type Estabelecimento struct {
	ID              string
	Nome            string
	Ativo           bool
	Plano           string // FREE | PRO
	LimiteProdutos  int
	LimiteUsuarios  int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
