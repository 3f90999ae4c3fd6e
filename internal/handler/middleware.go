package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/franchise-api/backend/internal/model"
	"github.com/franchise-api/backend/internal/service"
)

const authUserKey = "auth_user"

// AuthMiddleware verifies the bearer token and stores the principal on the
// context. Expired tokens still decode but are rejected here.
func AuthMiddleware(codec *service.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(c, service.ErrUnauthorized)
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			writeError(c, service.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := codec.Decode(token)
		if err != nil || codec.IsExpired(claims, time.Now()) {
			writeError(c, service.ErrUnauthorized)
			c.Abort()
			return
		}

		roles := make([]model.Role, 0, len(claims.Roles))
		for _, authority := range claims.Roles {
			roles = append(roles, model.Role(model.RoleFromAuthority(authority)))
		}
		c.Set(authUserKey, &model.Principal{Username: claims.Subject, Roles: roles})
		c.Next()
	}
}

// RequireRole gates a route group on a bare role name such as "ADMIN".
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetAuthUser(c)
		if principal == nil {
			writeError(c, service.ErrUnauthorized)
			c.Abort()
			return
		}
		for _, r := range principal.Roles {
			if r == role {
				c.Next()
				return
			}
		}
		writeError(c, service.ErrForbidden)
		c.Abort()
	}
}

func GetAuthUser(c *gin.Context) *model.Principal {
	if value, ok := c.Get(authUserKey); ok {
		if principal, ok := value.(*model.Principal); ok {
			return principal
		}
	}
	return nil
}

func CORSMiddleware(allowedOrigins string) gin.HandlerFunc {
	allowAll := false
	originMap := make(map[string]struct{})
	for _, origin := range strings.Split(allowedOrigins, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		if trimmed == "*" {
			allowAll = true
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			_, allowed := originMap[origin]
			if allowAll || allowed {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
