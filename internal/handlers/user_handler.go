package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vaicrm/internal/models"
	"vaicrm/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// @Summary      Listar usuários
// @Tags         Users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Service.List()
	if err != nil {
		failJSON(c, http.StatusInternalServerError, "Erro ao buscar usuários")
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	okList(c, len(users), users)
}

// @Summary      Criar usuário
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        user  body      models.CreateUserRequest  true  "Dados do usuário"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Router       /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.Service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsuarioInvalido),
			errors.Is(err, services.ErrPapelDesconhecido):
			failJSON(c, http.StatusBadRequest, err.Error())
		default:
			failJSON(c, http.StatusInternalServerError, "Erro ao criar usuário")
		}
		return
	}
	createdJSON(c, "Usuário criado", user)
}

// @Summary      Buscar usuário
// @Tags         Users
// @Produce      json
// @Param        id   path      int  true  "ID do usuário"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		failJSON(c, http.StatusBadRequest, "ID inválido")
		return
	}
	user, err := h.Service.GetByID(id)
	if err != nil {
		failJSON(c, http.StatusInternalServerError, "Erro ao buscar usuário")
		return
	}
	if user == nil {
		failJSON(c, http.StatusNotFound, "Usuário não encontrado")
		return
	}
	okJSON(c, user)
}

// @Summary      Remover usuário
// @Description  Operação administrativa; exige papel Gerencia.
// @Tags         Users
// @Produce      json
// @Param        id   path      int  true  "ID do usuário"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		failJSON(c, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrUsuarioNaoEncontrado) {
			failJSON(c, http.StatusNotFound, "Usuário não encontrado")
			return
		}
		failJSON(c, http.StatusInternalServerError, "Erro ao remover usuário")
		return
	}
	okMsg(c, "Usuário removido", nil)
}
