package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequirePasswordChanged blocks users still on their provisional password.
// Until the first password change completes, every business route answers
// 403 with a machine-readable flag so the frontend can redirect to the
// change-password screen. It assumes RequireAuth already ran.
func RequirePasswordChanged() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user != nil && user.PrimeiroAcesso {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"requiresPasswordChange": true,
				"message":                "you must change your password before continuing",
			})
			return
		}
		c.Next()
	}
}
