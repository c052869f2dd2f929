package estoque

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/coderonin/barstock-api/internal/domain/entity"
)

// removeDiacriticos decompõe em NFD e descarta as marcas combinantes (Mn),
// equivalente a normalize("NFD").replace(/[̀-ͯ]/g, "").
var removeDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarTipo remove acentos do tipo informado para comparação com os
// tokens canônicos ("Saída" e "Saida" são equivalentes). Retorna a forma
// sem acento preservando a caixa original.
func NormalizarTipo(tipo string) string {
	out, _, err := transform.String(removeDiacriticos, tipo)
	if err != nil {
		return tipo
	}
	return out
}

// EhEntrada e EhSaida comparam o tipo normalizado com os tokens canônicos,
// ignorando caixa. Qualquer outro valor não é entrada nem saída.
func EhEntrada(tipo string) bool {
	return strings.EqualFold(NormalizarTipo(tipo), entity.TipoEntrada)
}

func EhSaida(tipo string) bool {
	return strings.EqualFold(NormalizarTipo(tipo), entity.TipoSaida)
}
