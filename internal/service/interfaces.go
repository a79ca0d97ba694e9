package service

import (
	"context"

	"recetario/internal/model"
	"recetario/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Create(ctx context.Context, req *types.RecipeCreateRequest, image []byte) (*model.Recipe, error)
	Get(ctx context.Context, id string) (*model.Recipe, error)
	Update(ctx context.Context, req *types.RecipeUpdateRequest, image []byte) (*model.Recipe, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, params types.RecipeSearchParams) (*types.RecipePage, error)
}

// ImageStore uploads and deletes recipe images against the remote media host
type ImageStore interface {
	Upload(ctx context.Context, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}
