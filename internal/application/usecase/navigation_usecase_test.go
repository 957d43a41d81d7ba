package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/enterprise-brain-api/internal/application/dto"
	"github.com/jhoicas/enterprise-brain-api/internal/application/usecase"
	"github.com/jhoicas/enterprise-brain-api/internal/domain"
	"github.com/jhoicas/enterprise-brain-api/internal/domain/navigation"
)

func TestNavigationUseCase_Resolve(t *testing.T) {
	uc := usecase.NewNavigationUseCase()

	out, err := uc.Resolve("product", "防爆空调机")
	require.NoError(t, err)
	assert.Equal(t, "product", out.Category)
	assert.Equal(t, "3", out.ID)
	assert.True(t, out.Matched)
	assert.Equal(t, "/products/3", out.Route)

	out, err = uc.Resolve("customer", "未知客户")
	require.NoError(t, err, "un nombre desconocido no es error")
	assert.Equal(t, "1", out.ID)
	assert.False(t, out.Matched)
	assert.Equal(t, "/customers/1", out.Route)
}

func TestNavigationUseCase_Resolve_CoincideConResolvedores(t *testing.T) {
	uc := usecase.NewNavigationUseCase()
	for _, c := range navigation.Categories() {
		for _, name := range []string{"", "储能组", "HT2023028", "杭州新材料有限公司", "防爆空调机", "李娜"} {
			out, err := uc.Resolve(c.String(), name)
			require.NoError(t, err)
			assert.Equal(t, navigation.ResolverFor(c)(name), out.ID, "%s %q", c, name)
		}
	}
}

func TestNavigationUseCase_Resolve_CategoriaDesconocida(t *testing.T) {
	uc := usecase.NewNavigationUseCase()
	_, err := uc.Resolve("alert", "x")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestNavigationUseCase_ResolveBatch(t *testing.T) {
	uc := usecase.NewNavigationUseCase()

	out, err := uc.ResolveBatch("team", []string{"储能组", "", "华南销售组", "不存在"})
	require.NoError(t, err)
	require.Len(t, out.Items, 4)
	assert.Equal(t, "team", out.Category)
	assert.Equal(t, []string{"9", "1", "2", "1"}, []string{out.Items[0].ID, out.Items[1].ID, out.Items[2].ID, out.Items[3].ID})
	assert.Equal(t, 2, out.Unmatched)
}

func TestNavigationUseCase_ResolveBatch_Limites(t *testing.T) {
	uc := usecase.NewNavigationUseCase()

	_, err := uc.ResolveBatch("team", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	names := make([]string, usecase.MaxBatchNames+1)
	_, err = uc.ResolveBatch("team", names)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.ResolveBatch("team", names[:usecase.MaxBatchNames])
	require.NoError(t, err)
	assert.Len(t, out.Items, usecase.MaxBatchNames)
	assert.Equal(t, usecase.MaxBatchNames, out.Unmatched)

	_, err = uc.ResolveBatch("alert", []string{"x"})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestNavigationUseCase_ListCategories(t *testing.T) {
	out := usecase.NewNavigationUseCase().ListCategories()
	require.Len(t, out.Items, 5)

	assert.Equal(t, dto.CategoryResponse{Name: "product", Segment: "products", DefaultID: "1", Entries: 8}, out.Items[0])
	assert.Equal(t, "team", out.Items[1].Name)
	assert.Equal(t, 9, out.Items[1].Entries)
	assert.Equal(t, "customer", out.Items[4].Name)
	assert.Equal(t, 10, out.Items[4].Entries)
}

func TestNavigationUseCase_ListEntries_Paginacion(t *testing.T) {
	uc := usecase.NewNavigationUseCase()

	out, err := uc.ListEntries("customer", dto.PageRequest{Limit: 3, Offset: 8}, "")
	require.NoError(t, err)
	assert.Equal(t, 10, out.Page.Total)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "杭州新材料有限公司", out.Items[1].Name)
	assert.Equal(t, "10", out.Items[1].ID)
	assert.Equal(t, "/customers/10", out.Items[1].Route)

	out, err = uc.ListEntries("customer", dto.PageRequest{Limit: 5, Offset: 50}, "")
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	out, err = uc.ListEntries("contract", dto.PageRequest{}, "declaration")
	require.NoError(t, err)
	assert.Equal(t, 20, out.Page.Limit, "limit por defecto")
	assert.Len(t, out.Items, 8)
	assert.Equal(t, "HT2023021", out.Items[0].Name)
}

func TestNavigationUseCase_ListEntries_OrdenPorNombre(t *testing.T) {
	uc := usecase.NewNavigationUseCase()

	out, err := uc.ListEntries("product", dto.PageRequest{Limit: 100}, usecase.SortName)
	require.NoError(t, err)
	require.Len(t, out.Items, 8)

	col := collate.New(language.SimplifiedChinese)
	for i := 1; i < len(out.Items); i++ {
		assert.LessOrEqual(t, col.CompareString(out.Items[i-1].Name, out.Items[i].Name), 0,
			"%q debe ir antes que %q", out.Items[i-1].Name, out.Items[i].Name)
	}

	// El orden no altera la tabla.
	assert.Equal(t, "3", navigation.ResolveProductID("防爆空调机"))
}

func TestNavigationUseCase_ListEntries_Errores(t *testing.T) {
	uc := usecase.NewNavigationUseCase()

	_, err := uc.ListEntries("product", dto.PageRequest{}, "id")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ListEntries("model", dto.PageRequest{}, "")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}
