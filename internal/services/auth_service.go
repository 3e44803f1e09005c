package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vaicrm/internal/middleware"
	"vaicrm/internal/models"
)

// AuthService emite tokens de identidade. O token serve para atribuir
// vendas ao vendedor logado e para o gating consultivo da UI; não é a
// fronteira de segurança do sistema.
type AuthService struct {
	secret []byte
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

func (s *AuthService) GenerateToken(u *models.User) (string, error) {
	claims := &middleware.Claims{
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("assinar token: %w", err)
	}
	return signed, nil
}
