package middleware

import (
	"context"
	"net/http"
	"strings"

	"labbooking/internal/domain"
	"labbooking/internal/pkg/jwt"
	"labbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserLoader resolves the authenticated user so handlers get the current
// name and status, not whatever the token was minted with.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

func Auth(jwtService *jwt.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User no longer exists")
			c.Abort()
			return
		}
		if user.Status != domain.UserActive {
			response.Error(c, http.StatusForbidden, "ACCOUNT_INACTIVE", "Account has been deactivated")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)
		c.Set("user_name", user.Name)
		c.Set("role", string(user.Role))

		c.Next()
	}
}
