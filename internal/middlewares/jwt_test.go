package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MDMahidul/bistro-boss-server/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	return auth.NewTokenService([]byte("test-secret"), time.Hour)
}

func TestRequireAuthRejects(t *testing.T) {
	tokens := newTokens(t)
	expired := auth.NewTokenService([]byte("test-secret"), -time.Minute)
	expiredTok, err := expired.Issue("alice@example.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"bare token without prefix", "abc.def.ghi"},
		{"garbled token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expiredTok},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			handlerRan := false
			r.GET("/x", RequireAuth(tokens), func(c *gin.Context) {
				handlerRan = true
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, handlerRan, "downstream handler must not run")
			assert.JSONEq(t, `{"error":true,"message":"unauthorized access"}`, w.Body.String())
		})
	}
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	tokens := newTokens(t)
	tok, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/x", RequireAuth(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, TokenEmail(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	tokens := newTokens(t)
	tok, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	cases := []struct {
		name     string
		lookup   RoleLookup
		wantCode int
	}{
		{"admin passes", func(context.Context, string) (string, error) { return "admin", nil }, http.StatusOK},
		{"no role", func(context.Context, string) (string, error) { return "", nil }, http.StatusForbidden},
		{"other role", func(context.Context, string) (string, error) { return "waiter", nil }, http.StatusForbidden},
		{"lookup error", func(context.Context, string) (string, error) { return "", errors.New("db down") }, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			handlerRan := false
			r.GET("/x", RequireAuth(tokens), RequireAdmin(tc.lookup), func(c *gin.Context) {
				handlerRan = true
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantCode == http.StatusOK, handlerRan)
		})
	}
}

func TestRequireAdminLookupSeesTokenIdentity(t *testing.T) {
	tokens := newTokens(t)
	tok, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	var asked string
	lookup := func(_ context.Context, email string) (string, error) {
		asked = email
		return "admin", nil
	}

	r := gin.New()
	r.GET("/x", RequireAuth(tokens), RequireAdmin(lookup), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", asked)
}
