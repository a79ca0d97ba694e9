package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"recetario/internal/model"
	"recetario/internal/types"
)

func seedRecipe(t *testing.T, db *gorm.DB, title string, categories, ingredients []string, fit bool) *model.Recipe {
	recipe := &model.Recipe{
		Title:                 title,
		Categories:            model.JSONBStringArray(categories),
		Ingredients:           model.JSONBStringArray(ingredients),
		Instructions:          "Preparar y servir",
		Fit:                   fit,
		NormalizedTitle:       Normalize(title),
		NormalizedIngredients: model.JSONBStringArray(NormalizeList(ingredients)),
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

func setupSearchService(t *testing.T) *RecipeService {
	db := setupTestDB(t)
	seedRecipe(t, db, "Pizza casera", []string{"CENA"}, []string{"Harina", "Queso", "Tomate"}, false)
	seedRecipe(t, db, "Tarta de Queso", []string{"POSTRE"}, []string{"Queso", "Azúcar", "Harina"}, false)
	seedRecipe(t, db, "Ensalada César", []string{"ALMUERZO"}, []string{"Lechuga", "Pollo", "Queso"}, true)
	return NewRecipeService(db, nil)
}

func searchTitles(page *types.RecipePage) []string {
	titles := make([]string, 0, len(page.Content))
	for _, r := range page.Content {
		titles = append(titles, r.Title)
	}
	return titles
}

func TestSearchWithoutFiltersMatchesAll(t *testing.T) {
	svc := setupSearchService(t)

	page, err := svc.Search(context.Background(), types.RecipeSearchParams{PageSize: 10})
	assert.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalElements)
	assert.Len(t, page.Content, 3)
}

func TestSearchKeywordsAreConjoined(t *testing.T) {
	svc := setupSearchService(t)

	// both keywords must match; Ensalada César has queso but no harina
	page, err := svc.Search(context.Background(), types.RecipeSearchParams{Search: "harina queso", PageSize: 10})
	assert.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalElements)
	assert.ElementsMatch(t, []string{"Pizza casera", "Tarta de Queso"}, searchTitles(page))

	// no single recipe carries both keywords
	page, err = svc.Search(context.Background(), types.RecipeSearchParams{Search: "harina lechuga", PageSize: 10})
	assert.NoError(t, err)
	assert.EqualValues(t, 0, page.TotalElements)
	assert.Empty(t, page.Content)
}

func TestSearchIsCaseAndAccentInsensitive(t *testing.T) {
	svc := setupSearchService(t)

	page, err := svc.Search(context.Background(), types.RecipeSearchParams{Search: "CÉSAR", PageSize: 10})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Ensalada César"}, searchTitles(page))

	page, err = svc.Search(context.Background(), types.RecipeSearchParams{Search: "azucar", PageSize: 10})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Tarta de Queso"}, searchTitles(page))
}

func TestSearchMatchesTitleOrIngredients(t *testing.T) {
	svc := setupSearchService(t)

	page, err := svc.Search(context.Background(), types.RecipeSearchParams{Search: "pizza", PageSize: 10})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Pizza casera"}, searchTitles(page))

	page, err = svc.Search(context.Background(), types.RecipeSearchParams{Search: "tomate", PageSize: 10})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Pizza casera"}, searchTitles(page))
}

func TestSearchByCategories(t *testing.T) {
	svc := setupSearchService(t)

	page, err := svc.Search(context.Background(), types.RecipeSearchParams{
		Categories: []model.RecipeCategory{model.CategoryCena, model.CategoryPostre},
		PageSize:   10,
	})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Pizza casera", "Tarta de Queso"}, searchTitles(page))
}

func TestSearchByFit(t *testing.T) {
	svc := setupSearchService(t)

	fit := true
	page, err := svc.Search(context.Background(), types.RecipeSearchParams{Fit: &fit, PageSize: 10})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Ensalada César"}, searchTitles(page))

	fit = false
	page, err = svc.Search(context.Background(), types.RecipeSearchParams{Fit: &fit, PageSize: 10})
	assert.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalElements)
}

func TestSearchCombinesFilters(t *testing.T) {
	svc := setupSearchService(t)

	page, err := svc.Search(context.Background(), types.RecipeSearchParams{
		Categories: []model.RecipeCategory{model.CategoryPostre},
		Search:     "queso",
		PageSize:   10,
	})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Tarta de Queso"}, searchTitles(page))
}

func TestSearchTreatsLikeMetacharactersLiterally(t *testing.T) {
	db := setupTestDB(t)
	seedRecipe(t, db, "Ensalada 100% verde", []string{"ALMUERZO"}, []string{"Lechuga"}, true)
	seedRecipe(t, db, "Pizza casera", []string{"CENA"}, []string{"Harina", "Queso"}, false)
	svc := NewRecipeService(db, nil)

	page, err := svc.Search(context.Background(), types.RecipeSearchParams{Search: "100%", PageSize: 10})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Ensalada 100% verde"}, searchTitles(page))

	// "_" must not act as a single-character wildcard
	page, err = svc.Search(context.Background(), types.RecipeSearchParams{Search: "qu_so", PageSize: 10})
	assert.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestSearchPagination(t *testing.T) {
	svc := setupSearchService(t)

	page, err := svc.Search(context.Background(), types.RecipeSearchParams{Page: 0, PageSize: 2})
	assert.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.EqualValues(t, 3, page.TotalElements)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 2, page.Size)

	page, err = svc.Search(context.Background(), types.RecipeSearchParams{Page: 1, PageSize: 2})
	assert.NoError(t, err)
	assert.Len(t, page.Content, 1)

	page, err = svc.Search(context.Background(), types.RecipeSearchParams{Page: 5, PageSize: 2})
	assert.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.EqualValues(t, 3, page.TotalElements)
}
