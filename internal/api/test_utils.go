package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/stretchr/testify/require"

	"recetario/internal/service"
)

// setupTestRouter wires a handler onto the recipe routes the way the
// production router does, without middleware.
func setupTestRouter(t *testing.T, svc service.IRecipeService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("notblank", validators.NotBlank))

	handler := NewRecipeHandler(svc, validate)
	r := gin.New()
	r.GET("/recipes/search", handler.SearchRecipes)
	r.GET("/recipes/:id", handler.GetRecipe)
	r.POST("/recipes", handler.CreateRecipe)
	r.PATCH("/recipes", handler.UpdateRecipe)
	r.DELETE("/recipes/:id", handler.DeleteRecipe)
	return r
}

// multipartRecipeRequest builds the multipart body the recipe endpoints
// expect: a JSON "recipe" field plus an optional "image" file.
func multipartRecipeRequest(t *testing.T, method, url string, recipe interface{}, image []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	payload, err := json.Marshal(recipe)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("recipe", string(payload)))

	if image != nil {
		part, err := w.CreateFormFile("image", "image.jpg")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func performRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
