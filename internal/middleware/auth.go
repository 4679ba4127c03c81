package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/matcha-inventory/internal/auth"
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
	"github.com/BruksfildServices01/matcha-inventory/internal/httperr"
)

const (
	ContextUsername = "username"
	ContextUser     = "user"
)

// AuthMiddleware resolves the caller from the Authorization header. The
// "Bearer " prefix is optional.
func AuthMiddleware(users *auth.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("Authorization"))
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_token", "Token is missing!")
			return
		}
		if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
			token = strings.TrimSpace(token[7:])
		}

		user, err := users.Resolve(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrUserNotFound):
				httperr.Abort(c, http.StatusUnauthorized, "user_not_found", "User not found!")
			case errors.Is(err, auth.ErrInvalidToken):
				httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Token is invalid!")
			default:
				log.ErrorContext(c.Request.Context(), "token validation failed", "error", err)
				httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Token is invalid!")
			}
			return
		}

		c.Set(ContextUsername, user.Username)
		c.Set(ContextUser, user)
		c.Request = c.Request.WithContext(inventory.WithActor(c.Request.Context(), user.Username))

		c.Next()
	}
}
