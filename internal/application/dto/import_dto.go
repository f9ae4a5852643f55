package dto

// ImportRequest body para POST /api/products/import: texto tabular separado
// por comas, con fila de encabezado obligatoria.
type ImportRequest struct {
	CSV string `json:"csv" validate:"required"`
}

// ImportResult contadores del lote. SkippedRows cuenta filas descartadas por
// nombre vacío o precio ilegible (el lote no se aborta por ellas).
type ImportResult struct {
	InsertedProducts int `json:"insertedProducts"`
	UpdatedProducts  int `json:"updatedProducts"`
	InsertedItems    int `json:"insertedItems"`
	UpdatedItems     int `json:"updatedItems"`
	SkippedRows      int `json:"skippedRows"`
}
