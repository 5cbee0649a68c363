// Package textnorm нормализует пользовательский текст для поиска:
// регистр и румынские диакритические знаки (ă, â, î, ș, ț и их варианты с седилью) не учитываются.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveDiacritics удаляет диакритические знаки: "Brașov" -> "Brasov"
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// Fold приводит строку к виду для сравнения: без диакритики, в нижнем регистре, без крайних пробелов
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(RemoveDiacritics(s)))
}

// Equal сравнивает строки без учета регистра и диакритики
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Contains проверяет, что text содержит query без учета регистра и диакритики
func Contains(text, query string) bool {
	return strings.Contains(Fold(text), Fold(query))
}
