package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/enterprise-brain-api/internal/domain"
	"github.com/jhoicas/enterprise-brain-api/internal/domain/navigation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios concretos de la consola
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveProductID(t *testing.T) {
	assert.Equal(t, "3", navigation.ResolveProductID("防爆空调机"))
	assert.Equal(t, "1", navigation.ResolveProductID("不存在的产品"))
}

func TestResolveTeamID(t *testing.T) {
	assert.Equal(t, "9", navigation.ResolveTeamID("储能组"))
	assert.Equal(t, "1", navigation.ResolveTeamID(""), "la cadena vacía es un nombre desconocido")
}

func TestResolveCustomerID(t *testing.T) {
	assert.Equal(t, "10", navigation.ResolveCustomerID("杭州新材料有限公司"))
	assert.Equal(t, "1", navigation.ResolveCustomerID("未知客户"))
}

func TestResolveContractID(t *testing.T) {
	assert.Equal(t, "8", navigation.ResolveContractID("HT2023028"))
	assert.Equal(t, "1", navigation.ResolveContractID("ht2023028"), "la búsqueda es exacta")
}

func TestResolveSalespersonID(t *testing.T) {
	assert.Equal(t, "1", navigation.ResolveSalespersonID("张伟"))
	assert.Equal(t, "1", navigation.ResolveSalespersonID(" 李娜"), "sin recorte de espacios")
	assert.Equal(t, "2", navigation.ResolveSalespersonID("李娜"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades para todas las categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvers_CadaEntradaResuelveASuID(t *testing.T) {
	for _, c := range navigation.Categories() {
		resolve := navigation.ResolverFor(c)
		require.NotNil(t, resolve, "categoría %s sin resolvedor", c)
		table, ok := navigation.TableFor(c)
		require.True(t, ok)

		for _, e := range table.Entries() {
			assert.Equal(t, e.ID, resolve(e.Name), "%s: %q", c, e.Name)
		}
	}
}

func TestResolvers_DesconocidoDevuelvePrimeraEntrada(t *testing.T) {
	unknown := []string{"", " ", "???", "防爆空调机 ", "HT2099999", "\x00"}
	for _, c := range navigation.Categories() {
		resolve := navigation.ResolverFor(c)
		table, _ := navigation.TableFor(c)
		first := table.Entries()[0].ID

		assert.Equal(t, first, table.DefaultID(), "%s: el default debe ser la primera entrada", c)
		for _, s := range unknown {
			got := resolve(s)
			assert.Equal(t, first, got, "%s: %q", c, s)
			assert.NotEmpty(t, got)
		}
	}
}

func TestResolvers_DefaultsExplicitos(t *testing.T) {
	defaults := map[navigation.Category]string{
		navigation.CategoryProduct:     navigation.DefaultProductID,
		navigation.CategoryTeam:        navigation.DefaultTeamID,
		navigation.CategorySalesperson: navigation.DefaultSalespersonID,
		navigation.CategoryContract:    navigation.DefaultContractID,
		navigation.CategoryCustomer:    navigation.DefaultCustomerID,
	}
	for c, def := range defaults {
		table, ok := navigation.TableFor(c)
		require.True(t, ok)
		assert.Equal(t, def, table.DefaultID(), "%s", c)
		assert.Equal(t, "1", def)
	}
}

func TestResolvers_Deterministas(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "3", navigation.ResolveProductID("防爆空调机"))
		assert.Equal(t, "1", navigation.ResolveProductID("otro"))
	}
}

func TestTables_EntriesEsCopia(t *testing.T) {
	table, ok := navigation.TableFor(navigation.CategoryProduct)
	require.True(t, ok)

	entries := table.Entries()
	entries[2].ID = "999"
	entries[2].Name = "mutado"

	assert.Equal(t, "3", navigation.ResolveProductID("防爆空调机"))
	assert.Equal(t, "防爆空调机", table.Entries()[2].Name)
}

func TestTryResolve(t *testing.T) {
	id, ok := navigation.TryResolve(navigation.CategoryTeam, "储能组")
	assert.True(t, ok)
	assert.Equal(t, "9", id)

	id, ok = navigation.TryResolve(navigation.CategoryTeam, "不存在")
	assert.False(t, ok)
	assert.Equal(t, "1", id, "mismo resultado que ResolveTeamID")

	id, ok = navigation.TryResolve(navigation.Category("alert"), "x")
	assert.False(t, ok)
	assert.Empty(t, id)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías y rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestParseCategory(t *testing.T) {
	c, err := navigation.ParseCategory(" Customer ")
	require.NoError(t, err)
	assert.Equal(t, navigation.CategoryCustomer, c)

	_, err = navigation.ParseCategory("alert")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = navigation.ParseCategory("")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestCategories_OrdenFijo(t *testing.T) {
	assert.Equal(t, []navigation.Category{
		navigation.CategoryProduct,
		navigation.CategoryTeam,
		navigation.CategorySalesperson,
		navigation.CategoryContract,
		navigation.CategoryCustomer,
	}, navigation.Categories())
	assert.Nil(t, navigation.ResolverFor(navigation.Category("alert")))
}

func TestRoutePath(t *testing.T) {
	assert.Equal(t, "/products/3", navigation.RoutePath(navigation.CategoryProduct, "3"))
	assert.Equal(t, "/salespeople/1", navigation.RoutePath(navigation.CategorySalesperson, "1"))
	assert.Equal(t, "/customers/10", navigation.RoutePath(navigation.CategoryCustomer, navigation.ResolveCustomerID("杭州新材料有限公司")))
}
