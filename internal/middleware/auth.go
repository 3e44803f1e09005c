package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"vaicrm/internal/authz"
)

type Claims struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identify lê o Bearer token quando presente e coloca a identidade no
// contexto. Nunca bloqueia a requisição: o acesso da API é aberto e o
// papel só serve de gating consultivo.
func Identify(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.Next()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), claims, func(token *jwt.Token) (interface{}, error) {
			// só HMAC
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireGerencia protege as operações administrativas (delete de
// vendas, gestão de usuários).
func RequireGerencia() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleV, _ := c.Get("role")
		role, _ := roleV.(string)
		if !authz.IsGerencia(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Operação restrita à gerência",
			})
			return
		}
		c.Next()
	}
}
