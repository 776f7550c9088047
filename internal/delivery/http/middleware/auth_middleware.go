package middleware

import (
	"net/http"
	"strings"

	"go-internship-backend/internal/delivery/http/response"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/session"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the session from the Authorization header or the
// auth_token cookie and loads the authenticated user into the context.
func AuthMiddleware(sessions *session.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie(session.CookieName)
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := sessions.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired session", nil)
			c.Abort()
			return
		}

		// Fetch fresh user data so a deleted account cannot keep a live
		// session, and the role is never taken from a stale token alone
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}
