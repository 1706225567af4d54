package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	r.GET("/open", OptionalAuth(), func(c *gin.Context) {
		_, ok := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})
	return r
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRoundTrip(t *testing.T) {
	r := authTestRouter()

	token, err := GenerateToken(9, "jane@example.com")
	require.NoError(t, err)

	w := get(r, "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":9}`, w.Body.String())
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := authTestRouter()

	w := get(r, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthGarbageToken(t *testing.T) {
	r := authTestRouter()

	w := get(r, "/protected", "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	r := authTestRouter()

	w := get(r, "/open", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}

func TestOptionalAuthAttachesClaimsWhenPresent(t *testing.T) {
	r := authTestRouter()

	token, err := GenerateToken(4, "bob@example.com")
	require.NoError(t, err)

	w := get(r, "/open", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())
}
