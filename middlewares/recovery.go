// Catches panics and returns 500 without crashing the server.

package middlewares

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery responds with a 500 JSON body and logs the panic value.
// Stack traces never reach the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[panic] %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
