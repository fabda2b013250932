package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/webatelier/landing-api/internal/domain/entity"
	"github.com/webatelier/landing-api/pkg/helpers"
	"github.com/webatelier/landing-api/pkg/response"
)

// CtxIdentityKey is the Gin context key carrying the verified identity.
const CtxIdentityKey = "identity"

// Auth validates the bearer token and injects the asserted identity into the
// Gin context. Verification is pure computation; nothing is looked up
// server-side.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing token", nil).AbortJSON(c)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil).AbortJSON(c)
			return
		}
		c.Set(CtxIdentityKey, &entity.Identity{
			ID:    claims.Subject,
			Email: claims.Email,
			Role:  claims.Role,
		})
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := IdentityFrom(c)
		if id == nil {
			response.Error[any](c, http.StatusUnauthorized, "missing token", nil).AbortJSON(c)
			return
		}
		if id.Role != role {
			response.Error[any](c, http.StatusForbidden, "insufficient role", nil).AbortJSON(c)
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the verified identity from the context, or nil.
func IdentityFrom(c *gin.Context) *entity.Identity {
	v, ok := c.Get(CtxIdentityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*entity.Identity)
	return id
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
