package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vaicrm/internal/models"
	"vaicrm/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
	Auth  *services.AuthService
}

func NewAuthHandler(users *services.UserService, auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Users: users, Auth: auth}
}

// @Summary      Login
// @Description  Autentica por e-mail e senha e devolve o token JWT usado para
// @Description  identificar o vendedor nas demais rotas.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.LoginRequest  true  "Credenciais"
// @Success      200          {object}  map[string]interface{}
// @Failure      401          {object}  map[string]interface{}
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Users.GetByEmail(req.Email)
	if err != nil {
		log.Printf("[auth][login] erro ao buscar usuário: %v", err)
		failJSON(c, http.StatusInternalServerError, "Erro ao autenticar")
		return
	}
	if user == nil || !h.Users.CheckPassword(user, req.Password) {
		failJSON(c, http.StatusUnauthorized, "E-mail ou senha inválidos")
		return
	}

	token, err := h.Auth.GenerateToken(user)
	if err != nil {
		log.Printf("[auth][login] erro ao gerar token: %v", err)
		failJSON(c, http.StatusInternalServerError, "Erro ao autenticar")
		return
	}

	okJSON(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
