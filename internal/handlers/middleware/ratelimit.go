package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Limiter decide se uma chave ainda está dentro da cota
type Limiter interface {
	Allow(key string) bool
}

// RateLimit limita requisições por IP de cliente.
// Usado nos endpoints /auth para conter abuso do fluxo de códigos de
// confirmação.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			abortWithProblem(c, http.StatusTooManyRequests, "/problems/too-many-requests",
				"error.too_many_requests.title", "error.too_many_requests.detail")
			return
		}
		c.Next()
	}
}
