package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"vaicrm/internal/authz"
	"vaicrm/internal/models"
)

var (
	ErrUsuarioInvalido      = errors.New("nome, e-mail e senha são obrigatórios")
	ErrPapelDesconhecido    = errors.New("papel desconhecido")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)

type UserStore interface {
	Create(u *models.User) (int, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]*models.User, error)
	Delete(id int) error
}

type UserService struct {
	Repo  UserStore
	Email EmailService // opcional
}

func NewUserService(repo UserStore, email EmailService) *UserService {
	return &UserService{Repo: repo, Email: email}
}

func (s *UserService) Create(req *models.CreateUserRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, ErrUsuarioInvalido
	}
	role := req.Role
	if role == "" {
		role = authz.RoleVendedor
	}
	if !authz.IsValid(role) {
		return nil, ErrPapelDesconhecido
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("gerar hash de senha: %w", err)
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	id, err := s.Repo.Create(u)
	if err != nil {
		return nil, fmt.Errorf("criar usuário: %w", err)
	}
	u.ID = id

	if s.Email != nil {
		if err := s.Email.SendBoasVindas(u.Email, u.Name); err != nil {
			log.Printf("[user][create] e-mail de boas-vindas falhou: %v", err)
		}
	}
	return u, nil
}

func (s *UserService) GetByID(id int) (*models.User, error) {
	return s.Repo.GetByID(id)
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(strings.TrimSpace(email))
}

func (s *UserService) List() ([]*models.User, error) {
	return s.Repo.List()
}

func (s *UserService) Delete(id int) error {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUsuarioNaoEncontrado
	}
	return s.Repo.Delete(id)
}

// CheckPassword compara a senha informada com o hash guardado.
func (s *UserService) CheckPassword(u *models.User, password string) bool {
	if u == nil || u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
