package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const principalKey = "auth.principal"

// Authenticator extracts the Principal from bearer tokens on HTTP requests.
type Authenticator struct {
	jwtManager *JWTManager
}

// NewAuthenticator creates a new authenticator.
func NewAuthenticator(jwtManager *JWTManager) *Authenticator {
	return &Authenticator{jwtManager: jwtManager}
}

// Optional attaches a principal when a valid token is present and lets
// anonymous requests through. Invalid tokens are still rejected.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present := bearerToken(c.GetHeader("Authorization"))
		if !present {
			c.Next()
			return
		}
		if !a.attach(c, token) {
			return
		}
		c.Next()
	}
}

// Required rejects requests without a valid bearer token.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present := bearerToken(c.GetHeader("Authorization"))
		if !present {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		if !a.attach(c, token) {
			return
		}
		c.Next()
	}
}

func (a *Authenticator) attach(c *gin.Context, token string) bool {
	claims, err := a.jwtManager.ValidateToken(token)
	if err != nil {
		abortUnauthorized(c, "invalid or expired token")
		return false
	}
	c.Set(principalKey, claims.Principal())
	return true
}

// PrincipalFrom returns the principal attached by the middleware, or the
// anonymous principal.
func PrincipalFrom(c *gin.Context) Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(Principal); ok {
			return p
		}
	}
	return Principal{}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", true
	}
	return strings.TrimSpace(parts[1]), true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "UNAUTHORIZED",
		"message": message,
	})
}
