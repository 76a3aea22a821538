package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
