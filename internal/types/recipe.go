package types

import (
	"recetario/internal/model"
)

// RecipeCreateRequest carries the fields required to create a recipe
type RecipeCreateRequest struct {
	Title        string   `json:"title" validate:"required,notblank"`
	Categories   []string `json:"categories" validate:"required,min=1,dive,required"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Instructions string   `json:"instructions" validate:"required,notblank"`
	Fit          *bool    `json:"fit" validate:"required"`
}

// RecipeUpdateRequest carries a full replacement for an existing recipe.
// Every mutable field is overwritten; this is not a partial patch.
type RecipeUpdateRequest struct {
	ID           string   `json:"id" validate:"required"`
	Title        string   `json:"title" validate:"required,notblank"`
	Categories   []string `json:"categories" validate:"required,min=1,dive,required"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Instructions string   `json:"instructions" validate:"required,notblank"`
	Fit          *bool    `json:"fit" validate:"required"`
}

// RecipeResponse is the full projection returned by create/get/update
type RecipeResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Categories   []string `json:"categories"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Fit          bool     `json:"fit"`
	ImageURL     string   `json:"image_url,omitempty"`
}

// NewRecipeResponse projects a persisted recipe into its response shape
func NewRecipeResponse(r *model.Recipe) *RecipeResponse {
	return &RecipeResponse{
		ID:           r.ID.String(),
		Title:        r.Title,
		Categories:   r.Categories,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Fit:          r.Fit,
		ImageURL:     r.ImageURL,
	}
}

// RecipeSummary is the slim projection used for search result rows
type RecipeSummary struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Fit        bool     `json:"fit"`
	ImageURL   string   `json:"image_url,omitempty"`
}

// NewRecipeSummary projects a persisted recipe into its search row shape
func NewRecipeSummary(r *model.Recipe) *RecipeSummary {
	return &RecipeSummary{
		ID:         r.ID.String(),
		Title:      r.Title,
		Categories: r.Categories,
		Fit:        r.Fit,
		ImageURL:   r.ImageURL,
	}
}

// RecipeSearchParams are the optional filters and pagination for a search.
// A nil Fit means the flag is not filtered on.
type RecipeSearchParams struct {
	Categories []model.RecipeCategory
	Fit        *bool
	Search     string
	Page       int
	PageSize   int
}

// RecipePage is one page of search results with the unpaginated total
type RecipePage struct {
	Content       []RecipeSummary `json:"content"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
	TotalElements int64           `json:"total_elements"`
}
