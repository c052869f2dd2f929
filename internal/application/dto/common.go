package dto

// ErrorResponse corpo de erro HTTP: {"error": "mensagem"}.
type ErrorResponse struct {
	Error string `json:"error"`
}
