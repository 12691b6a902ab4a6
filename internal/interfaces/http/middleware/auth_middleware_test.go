package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quest-ring.backend/pkg/jwt"
)

func newAuthRouter(t *testing.T, optional bool) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := jwt.NewService("middleware-test-secret", time.Hour)

	mw := AuthMiddleware(jwtService)
	if optional {
		mw = OptionalAuthMiddleware(jwtService)
	}

	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		userID, hasUser := GetUserID(c)
		wallet, hasWallet := GetWalletAddress(c)
		c.JSON(http.StatusOK, gin.H{
			"hasUser":   hasUser && hasWallet,
			"userId":    userID.String(),
			"wallet":    wallet,
			"requestId": c.GetString(RequestIDKey),
		})
	})
	return r, jwtService
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(AuthorizationHeader, authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r, jwtService := newAuthRouter(t, false)

	userID := uuid.New()
	token, err := jwtService.Generate("8dHEFZ3wVSqsvvqY4KM2xYCaTDPUZN8WWYHdk9gPrFjv", userID)
	require.NoError(t, err)

	w := doRequest(r, BearerPrefix+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "8dHEFZ3wVSqsvvqY4KM2xYCaTDPUZN8WWYHdk9gPrFjv")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r, _ := newAuthRouter(t, false)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authorization header is required"}`, w.Body.String())
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	r, jwtService := newAuthRouter(t, false)

	token, err := jwtService.Generate("wallet", uuid.New())
	require.NoError(t, err)

	// A token without the Bearer prefix is treated as a missing header
	w := doRequest(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authorization header is required"}`, w.Body.String())

	w = doRequest(r, "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r, _ := newAuthRouter(t, false)

	w := doRequest(r, BearerPrefix+"not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	expiredService := jwt.NewService("middleware-test-secret", -time.Hour)
	token, err := expiredService.Generate("wallet", uuid.New())
	require.NoError(t, err)

	r, _ := newAuthRouter(t, false)
	w := doRequest(r, BearerPrefix+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestOptionalAuthMiddleware_NoToken(t *testing.T) {
	r, _ := newAuthRouter(t, true)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hasUser":false`)
}

func TestOptionalAuthMiddleware_BadTokenStillPasses(t *testing.T) {
	r, _ := newAuthRouter(t, true)

	w := doRequest(r, BearerPrefix+"garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hasUser":false`)
}

func TestOptionalAuthMiddleware_ValidToken(t *testing.T) {
	r, jwtService := newAuthRouter(t, true)

	userID := uuid.New()
	token, err := jwtService.Generate("wallet", userID)
	require.NoError(t, err)

	w := doRequest(r, BearerPrefix+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hasUser":true`)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestId": c.GetString(RequestIDKey)})
	})

	// Generated when absent
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// Honored when the client supplies one
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-12345")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-12345", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), "req-12345")
}
