package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bburrets/mdf-contract-management/internal/api/middleware"
	"github.com/bburrets/mdf-contract-management/internal/logger"
)

type testKeys struct {
	private   *rsa.PrivateKey
	publicPEM string
}

func newTestKeys(t *testing.T) testKeys {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return testKeys{
		private:   key,
		publicPEM: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	}
}

func (k testKeys) sign(t *testing.T, claims jwt.RegisteredClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(k.private)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	keys := newTestKeys(t)
	auth := middleware.NewAuthenticator(middleware.AuthConfig{
		JWTPublicKey: keys.publicPEM,
		APIKeys:      []string{"key-1", ""},
	})

	valid := keys.sign(t, jwt.RegisteredClaims{
		Subject:   "planner@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := keys.sign(t, jwt.RegisteredClaims{
		Subject:   "planner@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	hmac, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "forged"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		actor    string
		authType string
		want     string
		wantErr  string
	}{
		{name: "jwt subject", header: "Bearer " + valid, actor: "ignored", authType: middleware.AUTH_TYPE_JWT, want: "planner@example.com"},
		{name: "scheme is case insensitive", header: "bearer " + valid, authType: middleware.AUTH_TYPE_JWT, want: "planner@example.com"},
		{name: "api key with actor", header: "ApiKey key-1", actor: " ops@example.com ", authType: middleware.AUTH_TYPE_APIKEY, want: "ops@example.com"},
		{name: "api key without actor", header: "ApiKey key-1", authType: middleware.AUTH_TYPE_APIKEY},
		{name: "missing header", wantErr: "missing Authorization header"},
		{name: "malformed header", header: "Bearer", wantErr: "invalid Authorization header format"},
		{name: "unknown scheme", header: "Basic dXNlcjpwYXNz", wantErr: "unsupported authorization type"},
		{name: "wrong api key", header: "ApiKey key-2", wantErr: "invalid API key"},
		{name: "expired token", header: "Bearer " + expired, wantErr: "failed to parse token"},
		{name: "hmac token", header: "Bearer " + hmac, wantErr: "failed to parse token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := auth.Authenticate(tt.header, tt.actor)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.authType, result.AuthType)
			assert.Equal(t, tt.want, result.Actor)
		})
	}
}

func TestAuthenticate_Unconfigured(t *testing.T) {
	auth := middleware.NewAuthenticator(middleware.AuthConfig{})

	_, err := auth.Authenticate("Bearer token", "")
	assert.EqualError(t, err, "JWT public key not configured")

	_, err = auth.Authenticate("ApiKey anything", "")
	assert.EqualError(t, err, "no API keys configured")
}

func TestAuthMiddleware(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/whoami", middleware.Auth(middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{"key-1"}})),
		func(c *gin.Context) {
			c.String(http.StatusOK, middleware.Actor(c))
		})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "ApiKey key-1")
	req.Header.Set(middleware.ACTOR_HEADER, "ops@example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ops@example.com", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.REQUEST_ID_HEADER))

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "ApiKey nope")
	req.Header.Set(middleware.REQUEST_ID_HEADER, "req-42")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
	assert.Equal(t, "req-42", w.Header().Get(middleware.REQUEST_ID_HEADER))
}

func TestRecovery(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"internal_error"`)
}
