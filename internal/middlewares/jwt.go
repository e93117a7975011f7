package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
	"github.com/MDMahidul/bistro-boss-server/pkg/auth"
)

// ctxEmail is the gin context key the verified identity is attached under.
const ctxEmail = "email"

// RoleLookup resolves identity → role, consulted fresh per request.
type RoleLookup func(ctx context.Context, email string) (string, error)

// RequireAuth rejects requests without a valid bearer token and attaches the
// verified identity to the context before any handler runs.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		claims, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			abortUnauthorized(c)
			return
		}
		c.Set(ctxEmail, claims.Email)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth: it trusts the attached identity
// and does no signature check of its own.
func RequireAdmin(roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := roles(c.Request.Context(), TokenEmail(c))
		if err != nil || role != domain.RoleAdmin {
			AbortForbidden(c)
			return
		}
		c.Next()
	}
}

// TokenEmail returns the identity RequireAuth attached.
func TokenEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
}

// AbortForbidden rejects with the identity-mismatch/unprivileged signal.
// Mismatches are forbidden, not not-found, so identities cannot be probed.
func AbortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
}
