package dto

import "time"

// EstabelecimentoMeResponse identidade do token + dados do estabelecimento.
type EstabelecimentoMeResponse struct {
	ID             string    `json:"id"`
	Nome           string    `json:"nome"`
	Plano          string    `json:"plano"`
	LimiteProdutos int       `json:"limiteProdutos"`
	LimiteUsuarios int       `json:"limiteUsuarios"`
	UserID         string    `json:"userId"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}
