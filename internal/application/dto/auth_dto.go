package dto

// RegisterRequest cria o estabelecimento e seu usuário ADMIN inicial.
type RegisterRequest struct {
	NomeEstabelecimento string `json:"nomeEstabelecimento"`
	Nome                string `json:"nome"`
	Email               string `json:"email"`
	Senha               string `json:"senha"`
}

// RegisterResponse resposta do registro.
type RegisterResponse struct {
	Token string `json:"token"`
}

// LoginRequest credenciais de login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse token + dados do usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UsuarioLogin `json:"user"`
}

// UsuarioLogin dados do usuário retornados no login.
type UsuarioLogin struct {
	ID                  string `json:"id"`
	Nome                string `json:"name"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	EstabelecimentoID   string `json:"estabelecimento_id"`
	EstabelecimentoNome string `json:"estabelecimento_nome"`
}

// CreateUsuarioRequest cria um usuário adicional no estabelecimento (gate de plano).
type CreateUsuarioRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Role  string `json:"role"` // ADMIN | FUNCIONARIO (padrão FUNCIONARIO)
}

// UsuarioResponse usuário sem campos sensíveis.
type UsuarioResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
