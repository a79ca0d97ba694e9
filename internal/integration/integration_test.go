package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recetario/internal/model"
	"recetario/internal/service"
	"recetario/internal/testhelpers"
	"recetario/internal/types"
)

func createRecipe(t *testing.T, svc *service.RecipeService, title string, categories, ingredients []string, fit bool) *model.Recipe {
	t.Helper()
	recipe, err := svc.Create(context.Background(), &types.RecipeCreateRequest{
		Title:        title,
		Categories:   categories,
		Ingredients:  ingredients,
		Instructions: "Preparar y servir",
		Fit:          &fit,
	}, nil)
	require.NoError(t, err)
	return recipe
}

func TestRecipeLifecycleOnPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewRecipeService(db, nil)
	ctx := context.Background()

	created := createRecipe(t, svc, "Tarta de Jamón y Queso",
		[]string{"ALMUERZO", "CENA"}, []string{"Jamón", "Queso", "Huevos"}, false)

	found, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Tarta de Jamón y Queso", found.Title)
	assert.Equal(t, model.JSONBStringArray{"ALMUERZO", "CENA"}, found.Categories)
	assert.Equal(t, model.JSONBStringArray{"jamon", "queso", "huevos"}, found.NormalizedIngredients)

	fit := true
	updated, err := svc.Update(ctx, &types.RecipeUpdateRequest{
		ID:           created.ID.String(),
		Title:        "Tarta liviana de queso",
		Categories:   []string{"CENA"},
		Ingredients:  []string{"Queso", "Claras"},
		Instructions: "Mezclar y hornear",
		Fit:          &fit,
	}, nil)
	require.NoError(t, err)
	assert.True(t, updated.Fit)
	assert.Equal(t, model.JSONBStringArray{"CENA"}, updated.Categories)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))
	_, err = svc.Get(ctx, created.ID.String())
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestSearchOnPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewRecipeService(db, nil)
	ctx := context.Background()

	createRecipe(t, svc, "Pizza casera", []string{"CENA"}, []string{"Harina", "Queso", "Tomate"}, false)
	createRecipe(t, svc, "Tarta de Queso", []string{"POSTRE"}, []string{"Queso", "Azúcar", "Harina"}, false)
	createRecipe(t, svc, "Ensalada César", []string{"ALMUERZO"}, []string{"Lechuga", "Pollo", "Queso"}, true)

	// categories predicate exercises the jsonb::text cast
	page, err := svc.Search(ctx, types.RecipeSearchParams{
		Categories: []model.RecipeCategory{model.CategoryCena, model.CategoryPostre},
		PageSize:   10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalElements)

	page, err = svc.Search(ctx, types.RecipeSearchParams{Search: "harina queso", PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalElements)

	page, err = svc.Search(ctx, types.RecipeSearchParams{Search: "CÉSAR", PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Ensalada César", page.Content[0].Title)

	fit := true
	page, err = svc.Search(ctx, types.RecipeSearchParams{Fit: &fit, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalElements)
}
