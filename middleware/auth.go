package middleware

import (
	"context"
	"net/http"
	"strings"

	"Foodgram/models"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/jwt"
	"Foodgram/pkg/log"
	"Foodgram/pkg/response"

	ctxutil "Foodgram/pkg/context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth rejects requests without a valid access token.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			response.Abort(c, http.StatusUnauthorized, errs.CodeAuthenticationRequired, "authentication credentials were not provided")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TokenTypeAccess, token)
		if err != nil {
			log.L.Debug("token rejected", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, errs.CodeAuthenticationRequired, "invalid or expired token")
			return
		}
		c.Set(ctxutil.CtxUserID, claims.UserID)

		c.Next()
	}
}

// OptionalAuth sets the user id when a valid token is present and lets
// anonymous requests through. A malformed token is still rejected.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		Auth(secret)(c)
	}
}

// ActiveChecker loads a user and fails for unknown or inactive accounts.
type ActiveChecker interface {
	RequireActive(ctx context.Context, userID uint64) (*models.User, error)
}

// ActiveUser must run after Auth.
func ActiveUser(users ActiveChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := ctxutil.GetUserID(c)
		if err != nil {
			ctxutil.WriteError(c, err)
			return
		}
		user, err := users.RequireActive(c.Request.Context(), uid)
		if err != nil {
			ctxutil.WriteError(c, err)
			return
		}
		c.Set(ctxutil.CtxUser, user)

		c.Next()
	}
}

func bearer(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	switch parts[0] {
	case "Bearer", "Token":
		token := strings.TrimSpace(parts[1])
		return token, token != ""
	default:
		return "", false
	}
}
