package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for tokens that fail parsing or carry no subject.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager issues and validates the bearer tokens that carry a Principal.
type JWTManager struct {
	secret    string
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
func NewJWTManager(secret, issuer string, accessTTL time.Duration) *JWTManager {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	return &JWTManager{
		secret:    secret,
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// CustomClaims extends jwt.RegisteredClaims with the role set.
type CustomClaims struct {
	jwt.RegisteredClaims

	Roles []string `json:"roles"`
}

// Principal converts validated claims into a Principal.
func (c *CustomClaims) Principal() Principal {
	return Principal{UserID: c.Subject, Roles: append([]string(nil), c.Roles...)}
}

// GenerateToken signs an access token for principal.
func (j *JWTManager) GenerateToken(principal Principal) (string, time.Time, error) {
	if principal.UserID == "" {
		return "", time.Time{}, errors.New("principal subject is required")
	}

	now := time.Now()
	expiresAt := now.Add(j.accessTTL)
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   principal.UserID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		Roles: principal.Roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and validates a token and returns its claims.
func (j *JWTManager) ValidateToken(tokenString string) (*CustomClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateSecret generates a random secret for JWT signing.
func GenerateSecret() string {
	b := make([]byte, TokenKeySize)
	_, _ = rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}
