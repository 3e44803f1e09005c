package repositories

import (
	"database/sql"
	"fmt"

	"vaicrm/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) (int, error) {
	query := `
        INSERT INTO users (name, email, password_hash, role, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(query, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("criar usuário: %w", err)
	}
	return id, nil
}

func (r *UserRepository) GetByID(id int) (*models.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = $1`
	u := &models.User{}
	err := r.db.QueryRow(query, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuário por id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1`
	u := &models.User{}
	err := r.db.QueryRow(query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuário por e-mail: %w", err)
	}
	return u, nil
}

func (r *UserRepository) List() ([]*models.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_at FROM users ORDER BY name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listar usuários: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("ler usuário: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remover usuário: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("verificar remoção: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("usuário %d não encontrado", id)
	}
	return nil
}
