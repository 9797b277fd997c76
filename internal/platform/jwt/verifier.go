package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid is returned for malformed tokens, wrong signing methods
	// and signature mismatches.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned when the signature verifies but the token
	// is past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the verified content of a session token exposed to handlers.
// It never carries the signing secret or any internal signing detail.
type Claims struct {
	UserID uint
	Email  string
}

// TokenVerifier validates a bearer token and yields its claims.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// verifier implements TokenVerifier with an HMAC secret held for the process lifetime.
type verifier struct {
	secret []byte
}

// NewVerifier creates a TokenVerifier for tokens signed with the given symmetric secret.
func NewVerifier(secret string) TokenVerifier {
	return &verifier{secret: []byte(secret)}
}

// Verify parses the token, checks the signature and expiry, and extracts the claims.
func (v *verifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{}
	if sub, ok := mapClaims["sub"].(float64); ok { // JWT numbers are decoded as float64
		claims.UserID = uint(sub)
	} else {
		return nil, ErrTokenInvalid
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	return claims, nil
}
