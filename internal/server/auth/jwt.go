// Package auth implements the credential primitives of the service:
// signed access/refresh JWTs and one-way password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/Sumit-1325/auth-backend/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "typ" claim. Verification requires the caller
// to state which kind it expects, so an access token can never be replayed
// where a refresh token is required and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the claim bundle for both token kinds: registered claims
// (sub, jti, iat, exp) plus the user's role and the token type. The jti makes
// every minted token distinct, so rotating a refresh token always changes the
// digest the server keeps.
type Claims struct {
	jwt.RegisteredClaims
	Role      string `json:"role,omitempty"`
	TokenType string `json:"typ"`
}

func generateToken(userID, role, tokenType string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Role:      role,
		TokenType: tokenType,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateAccessToken mints a short-lived access token carrying the user's
// id and role.
func GenerateAccessToken(userID, role string, secretKey []byte, validity time.Duration) (string, error) {
	return generateToken(userID, role, TokenTypeAccess, secretKey, validity)
}

// GenerateRefreshToken mints a long-lived refresh token. It carries only the
// subject id; consumers must not read anything else from it.
func GenerateRefreshToken(userID string, secretKey []byte, validity time.Duration) (string, error) {
	return generateToken(userID, "", TokenTypeRefresh, secretKey, validity)
}

// ParseToken verifies the signature and shape of tokenString and returns its
// claims. Expired tokens yield common.ErrTokenExpired; any other defect,
// including a type mismatch, yields common.ErrTokenInvalid.
func ParseToken(tokenString string, secretKey []byte, expectedType string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}

	if !token.Valid || claims.TokenType != expectedType || claims.Subject == "" {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
