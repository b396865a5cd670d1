// Package slug genera los códigos de empresa e industria a partir de su nombre visible.
//
// El resultado es determinista, en minúsculas y solo contiene [a-z0-9-]. Los
// acentos se transliteran (NFKD sin marcas combinantes), algunos símbolos se
// deletrean (& -> and) y el resto de puntuación se elimina. Un nombre que no
// conserva ninguna letra o dígito ASCII (p. ej. "!!!" o "日本") devuelve ErrEmpty.
// La unicidad no es responsabilidad de este paquete: la garantiza la clave
// primaria en la base de datos.
package slug

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmpty indica que el nombre no produce ningún carácter válido.
var ErrEmpty = errors.New("slug: el nombre no contiene letras ni dígitos")

var symbols = map[rune]string{
	'&': "and",
	'$': "dollar",
	'%': "percent",
	'+': "plus",
	'@': "at",
	'<': "less",
	'>': "greater",
	'|': "or",
	'€': "euro",
	'£': "pound",
	'¢': "cent",
	'ß': "ss",
	'æ': "ae",
	'Æ': "ae",
	'ø': "o",
	'Ø': "o",
	'đ': "d",
	'Đ': "d",
	'ł': "l",
	'Ł': "l",
}

// Make deriva el código de name.
func Make(name string) (string, error) {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if s, ok := symbols[r]; ok {
			b.WriteString(s)
			continue
		}
		switch {
		case r == '-' || unicode.IsSpace(r):
			b.WriteByte(' ')
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(unicode.ToLower(r))
		}
	}

	out := strings.Join(strings.Fields(b.String()), "-")
	if out == "" {
		return "", ErrEmpty
	}
	return out, nil
}
