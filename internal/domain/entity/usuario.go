package entity

import "time"

// Roles válidos para Usuario.
const (
	RoleAdmin       = "ADMIN"
	RoleFuncionario = "FUNCIONARIO"
)

// Usuario representa um usuário do sistema (pertence a um Estabelecimento).
type Usuario struct {
	ID                string
	EstabelecimentoID string
	Nome              string
	Email             string // único em todo o sistema
	SenhaHash         string // bcrypt, nunca em texto plano após persistir
	Role              string // ADMIN | FUNCIONARIO
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
