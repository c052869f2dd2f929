package dto

// LimitesResponse limites efetivos do plano. -1 significa ilimitado (PRO).
type LimitesResponse struct {
	Plano                    string `json:"plano"`
	LimiteProdutos           int    `json:"limiteProdutos"`
	LimiteUsuarios           int    `json:"limiteUsuarios"`
	LimiteMovimentacaoMensal int    `json:"limiteMovimentacaoMensal"`
}

// UsoResponse contagens atuais de uso do estabelecimento.
type UsoResponse struct {
	Produtos        int `json:"produtos"`
	Usuarios        int `json:"usuarios"`
	MovimentacaoMes int `json:"movimentacaoMes"`
}

// RecursoStatus uso de um recurso frente ao seu limite.
type RecursoStatus struct {
	Usado      int  `json:"usado"`
	Limite     int  `json:"limite"`
	Percentual int  `json:"percentual"`
	Atencao    bool `json:"atencao"`  // >= 80%
	Atingido   bool `json:"atingido"` // >= 100%
}

// PlanoStatusResponse resumo completo: limites + uso + percentuais.
type PlanoStatusResponse struct {
	Plano                string        `json:"plano"`
	RecursosProdutos     RecursoStatus `json:"recursosProdutos"`
	RecursosUsuarios     RecursoStatus `json:"recursosUsuarios"`
	RecursosMovimentacao RecursoStatus `json:"recursosMovimentacao"`
	LimitesAtingidos     []string      `json:"limitesAtingidos"`
	Recomendacao         *string       `json:"recomendacao"`
}
