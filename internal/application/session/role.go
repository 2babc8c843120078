package session

import (
	"strings"

	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// AssignRole aplica la regla de rol del login: con intención de clase empleado,
// un email que contiene "admin" obtiene el rol admin; en otro caso se respeta la intención.
// Conveniencia de demo: la asignación real de roles debe ser una acción administrativa.
func AssignRole(email, intendedRole string) string {
	if entity.IsEmployeeClass(intendedRole) && strings.Contains(strings.ToLower(email), "admin") {
		return entity.RoleAdmin
	}
	return intendedRole
}
