package navigation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jhoicas/enterprise-brain-api/internal/domain"
)

// Category categoría de entidad navegable de la consola.
type Category string

const (
	CategoryProduct     Category = "product"
	CategorySalesperson Category = "salesperson"
	CategoryTeam        Category = "team"
	CategoryContract    Category = "contract"
	CategoryCustomer    Category = "customer"
)

var categoryOrder = [...]Category{
	CategoryProduct,
	CategoryTeam,
	CategorySalesperson,
	CategoryContract,
	CategoryCustomer,
}

// Segmento de ruta usado por las vistas para cada categoría.
var routeSegments = map[Category]string{
	CategoryProduct:     "products",
	CategoryTeam:        "teams",
	CategorySalesperson: "salespeople",
	CategoryContract:    "contracts",
	CategoryCustomer:    "customers",
}

// Categories devuelve las categorías en orden fijo.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder[:])
	return out
}

// ParseCategory acepta el nombre de la categoría sin distinguir mayúsculas.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := routeSegments[c]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCategory, s)
	}
	return c, nil
}

// Segment segmento de ruta de la categoría ("products", "teams", ...).
func (c Category) Segment() string {
	return routeSegments[c]
}

func (c Category) String() string { return string(c) }

// RoutePath construye el destino de navegación de una entidad, ej: "/products/3".
func RoutePath(c Category, id string) string {
	return "/" + c.Segment() + "/" + url.PathEscape(id)
}
