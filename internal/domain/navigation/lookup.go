package navigation

// Lookup búsqueda total: devuelve m[key] si existe y def en cualquier otro caso.
// Nunca falla; el valor por defecto lo decide quien llama.
func Lookup[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
