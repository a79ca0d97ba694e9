package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recetario/internal/model"
	"recetario/internal/types"
)

// RecipeService handles recipe operations
type RecipeService struct {
	db     *gorm.DB
	images ImageStore
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, images ImageStore) *RecipeService {
	return &RecipeService{
		db:     db,
		images: images,
	}
}

// Create persists a new recipe. When an image is provided it is uploaded
// first; if persistence then fails, the uploaded image is removed
// best-effort and the persistence error is the one returned.
func (s *RecipeService) Create(ctx context.Context, req *types.RecipeCreateRequest, image []byte) (*model.Recipe, error) {
	recipe := &model.Recipe{
		Title:                 req.Title,
		Categories:            model.JSONBStringArray(req.Categories),
		Ingredients:           model.JSONBStringArray(req.Ingredients),
		Instructions:          req.Instructions,
		Fit:                   *req.Fit,
		NormalizedTitle:       Normalize(req.Title),
		NormalizedIngredients: model.JSONBStringArray(NormalizeList(req.Ingredients)),
	}

	if len(image) > 0 {
		url, err := s.images.Upload(ctx, image)
		if err != nil {
			return nil, err
		}
		recipe.ImageURL = url
	}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		if recipe.ImageURL != "" {
			if delErr := s.images.Delete(ctx, recipe.ImageURL); delErr != nil {
				log.Printf("[RecipeService] could not remove uploaded image after failed create: %v", delErr)
			} else {
				log.Printf("[RecipeService] removed uploaded image after failed create: %s", recipe.ImageURL)
			}
		}
		return nil, fmt.Errorf("creating recipe: %w", err)
	}

	log.Printf("[RecipeService] created recipe %s (%s)", recipe.Title, recipe.ID)
	return recipe, nil
}

// Get retrieves a recipe by its identifier
func (s *RecipeService) Get(ctx context.Context, id string) (*model.Recipe, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrRecipeNotFound
	}

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("fetching recipe: %w", err)
	}
	return &recipe, nil
}

// Update fully replaces an existing recipe's fields from the request. A new
// image, when provided, is uploaded and takes over the image URL; the old
// image is deleted best-effort only after the row has been persisted, so a
// cleanup failure never fails the update.
func (s *RecipeService) Update(ctx context.Context, req *types.RecipeUpdateRequest, image []byte) (*model.Recipe, error) {
	existing, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = req.Title
	updated.Categories = model.JSONBStringArray(req.Categories)
	updated.Ingredients = model.JSONBStringArray(req.Ingredients)
	updated.Instructions = req.Instructions
	updated.Fit = *req.Fit
	updated.NormalizedTitle = Normalize(req.Title)
	updated.NormalizedIngredients = model.JSONBStringArray(NormalizeList(req.Ingredients))

	oldURL := existing.ImageURL
	replaced := false
	if len(image) > 0 {
		url, err := s.images.Upload(ctx, image)
		if err != nil {
			return nil, err
		}
		updated.ImageURL = url
		replaced = true
	}

	if err := s.db.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, fmt.Errorf("updating recipe: %w", err)
	}

	if replaced && oldURL != "" {
		if delErr := s.images.Delete(ctx, oldURL); delErr != nil {
			log.Printf("[RecipeService] could not remove previous image %s: %v", oldURL, delErr)
		} else {
			log.Printf("[RecipeService] removed previous image: %s", oldURL)
		}
	}

	log.Printf("[RecipeService] updated recipe %s (%s)", updated.Title, updated.ID)
	return &updated, nil
}

// Delete removes a recipe. Its image, if any, is deleted best-effort first;
// the row is removed regardless of the image outcome.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if recipe.ImageURL != "" {
		if delErr := s.images.Delete(ctx, recipe.ImageURL); delErr != nil {
			log.Printf("[RecipeService] could not remove image %s: %v", recipe.ImageURL, delErr)
		} else {
			log.Printf("[RecipeService] removed image: %s", recipe.ImageURL)
		}
	}

	if err := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", recipe.ID).Error; err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}

	log.Printf("[RecipeService] deleted recipe %s (%s)", recipe.Title, recipe.ID)
	return nil
}

// Search runs the filtered, paginated query plus the unpaginated count over
// the same predicates.
func (s *RecipeService) Search(ctx context.Context, params types.RecipeSearchParams) (*types.RecipePage, error) {
	base := applyRecipeFilters(s.db.WithContext(ctx).Model(&model.Recipe{}), params)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting recipes: %w", err)
	}

	var recipes []model.Recipe
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(params.Page * params.PageSize).
		Limit(params.PageSize).
		Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("searching recipes: %w", err)
	}

	content := make([]types.RecipeSummary, 0, len(recipes))
	for i := range recipes {
		content = append(content, *types.NewRecipeSummary(&recipes[i]))
	}

	return &types.RecipePage{
		Content:       content,
		Page:          params.Page,
		Size:          params.PageSize,
		TotalElements: total,
	}, nil
}
