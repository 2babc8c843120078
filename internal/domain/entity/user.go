package entity

import (
	"strings"
	"time"
)

// Roles válidos para User. El rol siempre proviene del perfil, nunca del token.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

// ValidRole informa si r es uno de los tres roles enumerados.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEmployee || r == RoleCustomer
}

// IsEmployeeClass informa si r pertenece a la clase empleado ({employee, admin}).
func IsEmployeeClass(r string) bool {
	return r == RoleEmployee || r == RoleAdmin
}

// User usuario autenticado tal como lo ven las pantallas y los guards.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
}

// Profile fila de la tabla profiles (clave = id del usuario del gateway).
type Profile struct {
	ID        string    `mapstructure:"id"`
	Name      string    `mapstructure:"name"`
	Email     string    `mapstructure:"email"`
	Role      string    `mapstructure:"role"`
	Company   string    `mapstructure:"company"`
	UpdatedAt time.Time `mapstructure:"updated_at"`
}

// ToUser proyecta el perfil al User de la sesión.
func (p *Profile) ToUser() *User {
	if p == nil {
		return nil
	}
	return &User{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Role:    p.Role,
		Company: p.Company,
	}
}

// DisplayNameFromEmail devuelve la parte local del email (nombre por defecto del perfil).
func DisplayNameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
