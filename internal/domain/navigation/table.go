package navigation

import (
	"errors"
	"fmt"
)

// Errores de construcción de tablas. Una tabla inválida es un error de programación:
// las tablas del paquete se construyen con mustTable y abortan el arranque.
var (
	ErrEmptyTable      = errors.New("navigation: tabla sin entradas")
	ErrEmptyName       = errors.New("navigation: nombre vacío")
	ErrEmptyID         = errors.New("navigation: identificador vacío")
	ErrDuplicateName   = errors.New("navigation: nombre duplicado")
	ErrDefaultMismatch = errors.New("navigation: el ID por defecto no corresponde a la primera entrada")
)

// Entry par nombre visible → identificador corto.
type Entry struct {
	Name string
	ID   string
}

// Table tabla nombre → ID de una categoría. Inmutable una vez construida;
// es seguro leerla desde varias goroutines sin sincronización.
type Table struct {
	entries   []Entry
	index     map[string]string
	defaultID string
}

// NewTable valida y construye una tabla.
//
// Invariantes:
//   - al menos una entrada;
//   - nombres no vacíos y únicos;
//   - identificadores no vacíos;
//   - defaultID igual al ID de la primera entrada declarada.
func NewTable(defaultID string, entries ...Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}
	if defaultID == "" {
		return nil, ErrEmptyID
	}
	if entries[0].ID != defaultID {
		return nil, fmt.Errorf("%w: default %q, primera entrada %q", ErrDefaultMismatch, defaultID, entries[0].ID)
	}
	index := make(map[string]string, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w (posición %d)", ErrEmptyName, i)
		}
		if e.ID == "" {
			return nil, fmt.Errorf("%w para %q", ErrEmptyID, e.Name)
		}
		if _, dup := index[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		index[e.Name] = e.ID
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Table{entries: cp, index: index, defaultID: defaultID}, nil
}

func mustTable(defaultID string, entries ...Entry) *Table {
	t, err := NewTable(defaultID, entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve devuelve el ID del nombre o el ID por defecto si no existe.
func (t *Table) Resolve(name string) string {
	return Lookup(t.index, name, t.defaultID)
}

// TryResolve igual que Resolve pero indica si el nombre estaba en la tabla.
func (t *Table) TryResolve(name string) (string, bool) {
	id, ok := t.index[name]
	if !ok {
		return t.defaultID, false
	}
	return id, true
}

// DefaultID identificador devuelto para nombres desconocidos.
func (t *Table) DefaultID() string { return t.defaultID }

// Len número de entradas.
func (t *Table) Len() int { return len(t.entries) }

// Entries copia de las entradas en orden de declaración.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
