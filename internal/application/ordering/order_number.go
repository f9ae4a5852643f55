package ordering

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const orderNumberPrefix = "PP"

// NewOrderNumber genera un número de orden <prefijo>-<fecha>-<aleatorio>.
// La unicidad es probabilística: ante un choque con la constraint única el
// motor regenera y reintenta en vez de fallar la orden.
func NewOrderNumber(now time.Time) string {
	stamp := now.UTC().Format("200601021504")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:4])
	return orderNumberPrefix + "-" + stamp + "-" + suffix
}
