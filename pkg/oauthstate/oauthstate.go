// Package oauthstate firma y valida el parámetro state de los flujos OAuth.
// El state es un JWT HS256 de vida corta: protege el callback contra CSRF y
// transporta el proveedor esperado.
package oauthstate

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims estándar más el proveedor al que pertenece el flujo.
type Claims struct {
	jwt.RegisteredClaims
	Provider string `json:"provider"`
}

// Generate genera un state firmado para el proveedor indicado.
func Generate(secret, provider string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("oauthstate: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Provider: provider,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el state y devuelve el proveedor. Retorna error si el token es
// inválido, expirado o tiene firma incorrecta.
func Parse(secret, state string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("oauthstate: secret vacío")
	}
	token, err := jwt.ParseWithClaims(state, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.Provider, nil
}
