package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperario = "operario"
)

// User usuario del panel (autenticación con bcrypt + JWT).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
