package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleBroker = "broker"
)

// User representa un usuario del sistema (asesor que genera cotizaciones).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, broker
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
