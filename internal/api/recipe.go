package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"recetario/internal/model"
	"recetario/internal/service"
	"recetario/internal/types"
)

const (
	defaultPage     = 0
	defaultPageSize = 10
)

// RecipeHandler exposes recipe operations over HTTP
type RecipeHandler struct {
	service  service.IRecipeService
	validate *validator.Validate
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(svc service.IRecipeService, validate *validator.Validate) *RecipeHandler {
	return &RecipeHandler{
		service:  svc,
		validate: validate,
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, types.NewErrorResponse(status, message))
}

// respondServiceError maps service failures onto the HTTP error taxonomy
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrImageUpload):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[RecipeHandler] unexpected error: %v", err)
		respondError(c, http.StatusInternalServerError, "unexpected error")
	}
}

// readImagePart reads the optional multipart image. A missing part is
// not an error; the recipe simply has no image.
func readImagePart(c *gin.Context) ([]byte, error) {
	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// CreateRecipe handles POST /recipes. The request is multipart: a JSON
// "recipe" part plus an optional binary "image" part.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.RecipeCreateRequest
	if !h.bindRecipePart(c, &req) {
		return
	}
	categories, err := model.ParseCategories(req.Categories)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Categories = categoryStrings(categories)

	image, err := readImagePart(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "could not read image part")
		return
	}

	recipe, err := h.service.Create(c.Request.Context(), &req, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.NewRecipeResponse(recipe))
}

// GetRecipe handles GET /recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

// UpdateRecipe handles PATCH /recipes. The body fully replaces the
// stored recipe; the target id travels inside the JSON part.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var req types.RecipeUpdateRequest
	if !h.bindRecipePart(c, &req) {
		return
	}
	categories, err := model.ParseCategories(req.Categories)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Categories = categoryStrings(categories)

	image, err := readImagePart(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "could not read image part")
		return
	}

	recipe, err := h.service.Update(c.Request.Context(), &req, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

// DeleteRecipe handles DELETE /recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

// SearchRecipes handles GET /recipes/search with optional categories,
// fit, free-text search and pagination query parameters.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	params := types.RecipeSearchParams{
		Search:   c.Query("search"),
		Page:     defaultPage,
		PageSize: defaultPageSize,
	}

	if raw := collectQueryValues(c, "categories"); len(raw) > 0 {
		categories, err := model.ParseCategories(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		params.Categories = categories
	}

	if v := c.Query("fit"); v != "" {
		fit, err := strconv.ParseBool(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "fit must be a boolean")
			return
		}
		params.Fit = &fit
	}

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 0 {
			respondError(c, http.StatusBadRequest, "page must be a non-negative integer")
			return
		}
		params.Page = page
	}
	if v := c.Query("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 {
			respondError(c, http.StatusBadRequest, "size must be a positive integer")
			return
		}
		params.PageSize = size
	}

	page, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// bindRecipePart decodes and validates the JSON "recipe" multipart field.
// It writes the error response itself and reports whether binding succeeded.
func (h *RecipeHandler) bindRecipePart(c *gin.Context, req interface{}) bool {
	payload := c.PostForm("recipe")
	if payload == "" {
		respondError(c, http.StatusBadRequest, "missing recipe part")
		return false
	}
	if err := json.Unmarshal([]byte(payload), req); err != nil {
		respondError(c, http.StatusBadRequest, "recipe part is not valid JSON")
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// categoryStrings maps parsed categories back to their canonical
// spellings, so only the canonical form is ever persisted
func categoryStrings(categories []model.RecipeCategory) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// collectQueryValues gathers a repeatable query parameter, additionally
// splitting comma-separated values so ?categories=CENA,POSTRE works too
func collectQueryValues(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
