// Package clave normaliza nombres legibles a claves estables de catálogo:
// minúsculas, sin acentos, espacios y signos colapsados a "_". Se usa para
// las claves de categoría ("Salón Palmas" → "salon_palmas").
package clave

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quita marcas diacríticas tras descomponer (á → a + ́ → a).
var sinAcentos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize convierte un nombre a clave: minúsculas, sin acentos, runas no
// alfanuméricas colapsadas a un solo "_", sin "_" al inicio ni al final.
func Normalize(nombre string) string {
	s, _, err := transform.String(sinAcentos, nombre)
	if err != nil {
		s = nombre
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	prevSep := true // evita "_" inicial
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevSep = false
		default:
			if !prevSep {
				b.WriteByte('_')
				prevSep = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
