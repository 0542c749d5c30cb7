package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añaden Email, Name y AvatarURL para poder reconstruir el principal de la petición
// sin consultar la DB, y Role para decisiones RBAC en el middleware.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	AgencyID  string `json:"agency_id"` // vacío si el usuario aún no pertenece a una agencia
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role"` // AGENCY_OWNER | AGENCY_ADMIN | SUBACCOUNT_USER | SUBACCOUNT_GUEST
}

// TokenInput datos a embeber en un token de sesión.
type TokenInput struct {
	UserID    string
	AgencyID  string
	Email     string
	Name      string
	AvatarURL string
	Role      string
}

// Generate genera un token JWT firmado con los datos del principal.
func Generate(secret string, in TokenInput, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   in.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    in.UserID,
		AgencyID:  in.AgencyID,
		Email:     in.Email,
		Name:      in.Name,
		AvatarURL: in.AvatarURL,
		Role:      in.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims de la aplicación.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
