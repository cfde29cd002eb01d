// Package authn bridges the external identity provider: it only verifies
// tokens the provider issued and mirrors their claims, it never manages
// credentials or sessions.
package authn

import (
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	AccountID uint   `json:"account_id"`
	Name      string `json:"name"`
	Nick      string `json:"nick"`
	Avatar    string `json:"avatar"`
	IsAdmin   bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenReader validates provider-issued tokens against the provider's
// public key.
type TokenReader struct {
	key any
}

func NewTokenReader(publicKeyPath string) (*TokenReader, error) {
	raw, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read identity provider public key: %v", err)
	}

	key, err := jwt.ParseEdPublicKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to parse identity provider public key: %v", err)
	}

	return &TokenReader{key: key}, nil
}

func (v *TokenReader) ReadToken(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return claims, err
	}
	if !token.Valid {
		return claims, fmt.Errorf("token is not valid")
	}

	return claims, nil
}
