package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"recetario/internal/types"
)

// Recovery turns panics in downstream handlers into the structured
// error body instead of a bare connection reset
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Recovery] panic handling %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					types.NewErrorResponse(http.StatusInternalServerError, "unexpected error"))
			}
		}()
		c.Next()
	}
}
