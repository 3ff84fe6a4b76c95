package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/bburrets/mdf-contract-management/internal/api/errors"
	"github.com/bburrets/mdf-contract-management/internal/logger"
)

const (
	AUTH_TYPE_KEY  = "auth_type"
	ACTOR_KEY      = "actor"
	JWT_CLAIMS_KEY = "jwt_claims"

	// ACTOR_HEADER names the acting user when the caller authenticates with an API key
	ACTOR_HEADER = "X-Actor-ID"

	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Authenticator validates Authorization headers against a parsed configuration
type Authenticator struct {
	publicKey    *rsa.PublicKey
	publicKeyErr error
	apiKeys      [][]byte
}

// NewAuthenticator parses the configured key material once
func NewAuthenticator(cfg AuthConfig) *Authenticator {
	a := &Authenticator{}
	if cfg.JWTPublicKey == "" {
		a.publicKeyErr = errors.New("JWT public key not configured")
	} else if key, err := parseRSAPublicKey(cfg.JWTPublicKey); err != nil {
		a.publicKeyErr = fmt.Errorf("failed to parse RSA public key: %w", err)
	} else {
		a.publicKey = key
	}
	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys = append(a.apiKeys, []byte(key))
		}
	}
	return a
}

// AuthResult holds the result of authentication
type AuthResult struct {
	AuthType string
	Claims   *jwt.RegisteredClaims
	// Actor is the JWT subject, or the X-Actor-ID header for API key callers. It may be empty.
	Actor string
}

// Authenticate validates the Authorization header. actorHeader is only consulted for API keys.
func (a *Authenticator) Authenticate(authHeader, actorHeader string) (*AuthResult, error) {
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return nil, errors.New("invalid Authorization header format")
	}

	credentials := strings.TrimSpace(parts[1])
	switch strings.ToLower(parts[0]) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return nil, err
		}
		return &AuthResult{AuthType: AUTH_TYPE_JWT, Claims: claims, Actor: claims.Subject}, nil

	case "apikey":
		if err := a.validateAPIKey(credentials); err != nil {
			return nil, err
		}
		return &AuthResult{AuthType: AUTH_TYPE_APIKEY, Actor: strings.TrimSpace(actorHeader)}, nil

	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", parts[0])
	}
}

// Auth returns a gin middleware that requires a Bearer JWT or an ApiKey and records the actor
func Auth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := a.Authenticate(c.GetHeader("Authorization"), c.GetHeader(ACTOR_HEADER))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Set(AUTH_TYPE_KEY, result.AuthType)
		if result.Claims != nil {
			c.Set(JWT_CLAIMS_KEY, result.Claims)
		}
		if result.Actor != "" {
			c.Set(ACTOR_KEY, result.Actor)
			c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), zap.String("actor", result.Actor)))
		}

		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("auth_type", result.AuthType),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// Actor returns the authenticated actor of the request, or "" when there is none
func Actor(c *gin.Context) string {
	return c.GetString(ACTOR_KEY)
}

// validateJWT validates an RS256 token and returns its claims
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKeyErr != nil {
		return nil, a.publicKeyErr
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	}, jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// PKIX first, then PKCS1
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}

func (a *Authenticator) validateAPIKey(apiKey string) error {
	if len(a.apiKeys) == 0 {
		return errors.New("no API keys configured")
	}

	for _, key := range a.apiKeys {
		if subtle.ConstantTimeCompare(key, []byte(apiKey)) == 1 {
			return nil
		}
	}
	return errors.New("invalid API key")
}
