package dto

// ResolveResponse resultado de resolver un nombre visible.
// Matched=false indica que se devolvió el ID por defecto de la categoría.
type ResolveResponse struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	ID       string `json:"id"`
	Matched  bool   `json:"matched"`
	Route    string `json:"route"`
}

// BatchResolveRequest cuerpo de POST /api/navigation/{category}/resolve.
type BatchResolveRequest struct {
	Names []string `json:"names"`
}

// BatchResolveResponse resultados en el mismo orden que la petición.
type BatchResolveResponse struct {
	Category  string            `json:"category"`
	Items     []ResolveResponse `json:"items"`
	Unmatched int               `json:"unmatched"`
}

// CategoryResponse descripción de una categoría navegable.
type CategoryResponse struct {
	Name      string `json:"name"`
	Segment   string `json:"segment"`
	DefaultID string `json:"default_id"`
	Entries   int    `json:"entries"`
}

// CategoryListResponse respuesta de GET /api/navigation/categories.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// EntryResponse una fila de la tabla nombre → ID.
type EntryResponse struct {
	Name  string `json:"name"`
	ID    string `json:"id"`
	Route string `json:"route"`
}

// EntryListResponse listado paginado de entradas.
type EntryListResponse struct {
	Category string          `json:"category"`
	Items    []EntryResponse `json:"items"`
	Page     PageResponse    `json:"page"`
}
