package catalog

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GenerateSKU deriva un SKU del nombre del producto: primeras letras
// significativas en mayúscula más un sufijo aleatorio de unicidad.
// La unicidad es probabilística; la constraint de la BD es la garantía final.
func GenerateSKU(name string) string {
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
		prefix = "PRD"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return prefix + "-" + suffix
}
