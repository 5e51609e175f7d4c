package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinIdentity adapts the net/http Identity middleware to Gin.
func GinIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		Identity(next).ServeHTTP(c.Writer, c.Request)
	}
}
