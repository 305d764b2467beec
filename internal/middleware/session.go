package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/models"
	"github.com/vmachado/escritorio-api/internal/session"
)

// ContextUserKey is the gin context key storing the authenticated user.
const ContextUserKey = "currentUser"

// UserLoader resolves a user by identifier for session hydration.
type UserLoader interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Session resolves the session cookie into a user and attaches it to the
// request context. Requests without a valid session pass through
// anonymously; access control is enforced downstream by RequireAuth.
// Sessions carry a fixed TTL set at login; resolving one here does not
// extend it.
//
// A deactivated account keeps its existing session: the ativo flag gates
// login only, so the flag is deliberately not checked here.
func Session(cookieName string, codec *session.TokenCodec, store session.Store, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		token, err := codec.Verify(cookie)
		if err != nil {
			c.Next()
			return
		}

		data, err := store.Get(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.FindByID(c.Request.Context(), data.UserID)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Next()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user from the gin context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
