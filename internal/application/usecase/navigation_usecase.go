package usecase

import (
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/enterprise-brain-api/internal/application/dto"
	"github.com/jhoicas/enterprise-brain-api/internal/domain"
	"github.com/jhoicas/enterprise-brain-api/internal/domain/navigation"
)

// MaxBatchNames máximo de nombres por petición de resolución en lote.
const MaxBatchNames = 100

// Orden de ListEntries.
const (
	SortDeclaration = "declaration"
	SortName        = "name"
)

// NavigationUseCase expone las tablas de navegación a la capa HTTP.
// Un nombre desconocido nunca es error: se informa con Matched=false.
type NavigationUseCase struct {
	tag language.Tag
}

// NewNavigationUseCase construye el caso de uso. Los nombres se ordenan con
// la intercalación de chino simplificado.
func NewNavigationUseCase() *NavigationUseCase {
	return &NavigationUseCase{tag: language.SimplifiedChinese}
}

// Resolve resuelve un nombre. Solo falla si la categoría no existe.
func (uc *NavigationUseCase) Resolve(category, name string) (*dto.ResolveResponse, error) {
	c, err := navigation.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	out := resolveOne(c, name)
	return &out, nil
}

// ResolveBatch resuelve hasta MaxBatchNames nombres conservando el orden.
func (uc *NavigationUseCase) ResolveBatch(category string, names []string) (*dto.BatchResolveResponse, error) {
	c, err := navigation.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: names requerido", domain.ErrInvalidInput)
	}
	if len(names) > MaxBatchNames {
		return nil, fmt.Errorf("%w: máximo %d nombres, recibidos %d", domain.ErrInvalidInput, MaxBatchNames, len(names))
	}
	items := make([]dto.ResolveResponse, 0, len(names))
	unmatched := 0
	for _, name := range names {
		r := resolveOne(c, name)
		if !r.Matched {
			unmatched++
		}
		items = append(items, r)
	}
	return &dto.BatchResolveResponse{
		Category:  c.String(),
		Items:     items,
		Unmatched: unmatched,
	}, nil
}

// ListCategories lista las categorías en orden fijo.
func (uc *NavigationUseCase) ListCategories() *dto.CategoryListResponse {
	cats := navigation.Categories()
	items := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		t, ok := navigation.TableFor(c)
		if !ok {
			continue
		}
		items = append(items, dto.CategoryResponse{
			Name:      c.String(),
			Segment:   c.Segment(),
			DefaultID: t.DefaultID(),
			Entries:   t.Len(),
		})
	}
	return &dto.CategoryListResponse{Items: items}
}

// ListEntries lista las entradas de una categoría con paginación.
// sortBy: "declaration" (por defecto) o "name".
func (uc *NavigationUseCase) ListEntries(category string, page dto.PageRequest, sortBy string) (*dto.EntryListResponse, error) {
	c, err := navigation.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	t, ok := navigation.TableFor(c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, c)
	}
	page.DefaultPage()

	entries := t.Entries()
	switch sortBy {
	case "", SortDeclaration:
	case SortName:
		// collate.Collator no es seguro para uso concurrente: uno por llamada.
		col := collate.New(uc.tag)
		slices.SortStableFunc(entries, func(a, b navigation.Entry) int {
			return col.CompareString(a.Name, b.Name)
		})
	default:
		return nil, fmt.Errorf("%w: sort %q no soportado", domain.ErrInvalidInput, sortBy)
	}

	total := len(entries)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)

	items := make([]dto.EntryResponse, 0, end-start)
	for _, e := range entries[start:end] {
		items = append(items, dto.EntryResponse{
			Name:  e.Name,
			ID:    e.ID,
			Route: navigation.RoutePath(c, e.ID),
		})
	}
	return &dto.EntryListResponse{
		Category: c.String(),
		Items:    items,
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func resolveOne(c navigation.Category, name string) dto.ResolveResponse {
	id, matched := navigation.TryResolve(c, name)
	return dto.ResolveResponse{
		Category: c.String(),
		Name:     name,
		ID:       id,
		Matched:  matched,
		Route:    navigation.RoutePath(c, id),
	}
}
