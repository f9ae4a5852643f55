package inventory

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GenerateItemCode deriva un código de ítem del nombre, con sufijo aleatorio.
// La constraint única de la BD es la garantía final de unicidad.
func GenerateItemCode(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
		if b.Len() >= 6 {
			break
		}
	}
	prefix := b.String()
	if prefix == "" {
		prefix = "ITM"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return prefix + "-" + suffix
}
