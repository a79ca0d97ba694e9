package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"recetario/internal/api"
	"recetario/internal/middleware"
)

// SetupRouter configures the application routes. A nil limiter disables
// rate limiting on the mutating routes.
func SetupRouter(recipeHandler *api.RecipeHandler, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	recipes := router.Group("/recipes")
	{
		recipes.GET("/search", recipeHandler.SearchRecipes)
		recipes.GET("/:id", recipeHandler.GetRecipe)

		writes := recipes.Group("")
		if limiter != nil {
			writes.Use(limiter.Middleware())
		}
		{
			writes.POST("", recipeHandler.CreateRecipe)
			writes.PATCH("", recipeHandler.UpdateRecipe)
			writes.DELETE("/:id", recipeHandler.DeleteRecipe)
		}
	}

	return router
}
