package entity

import "time"

// Roles de usuario.
const (
	RoleAdministrador = "Administrador"
	RoleGerencia      = "Gerencia"
	RoleOperativo     = "Operativo"
)

// User es un usuario del sistema. Password guarda el hash bcrypt; AccessPin es
// un PIN corto para desbloqueo rápido de caja.
type User struct {
	ID        int64
	Name      string
	Username  string
	Email     string
	Password  string
	Role      string // Administrador, Gerencia, Operativo
	AccessPin string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
