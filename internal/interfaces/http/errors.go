package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/domain"
)

// respondError mapeia os erros de negócio para o contrato {"error": "mensagem"}.
// Falha de negócio é sempre 400; o restante vira 500 sem vazar detalhe interno.
func respondError(c *fiber.Ctx, err error) error {
	if isBusinessError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno"})
}

func isBusinessError(err error) bool {
	if domain.IsLimiteExcedido(err) {
		return true
	}
	for _, sentinel := range []error{
		domain.ErrEstabelecimentoNotFound,
		domain.ErrProdutoNotFound,
		domain.ErrFornecedorNotFound,
		domain.ErrUsuarioNotFound,
		domain.ErrEstoqueInsuficiente,
		domain.ErrSenhaInvalida,
		domain.ErrEmailJaCadastrado,
		domain.ErrEntradaInvalida,
		domain.ErrNaoAutorizado,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
