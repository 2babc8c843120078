// Package guard decide el acceso a las rutas protegidas a partir del estado de sesión.
package guard

import (
	"slices"

	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// Outcome resultado de una decisión de acceso.
type Outcome int

const (
	// Allow el usuario puede ver la ruta.
	Allow Outcome = iota
	// Loading la sesión aún carga; la decisión queda pendiente.
	Loading
	// Redirect enviar al login que corresponde.
	Redirect
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Loading:
		return "loading"
	default:
		return "redirect"
	}
}

// Decision resultado de Decide; Location solo aplica a Redirect.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Policy roles admitidos y login de destino de una familia de rutas.
type Policy struct {
	Name      string
	Allowed   []string
	LoginPath string
}

var (
	// Employee rutas internas: empleados y administradores.
	Employee = Policy{Name: "employee", Allowed: []string{entity.RoleEmployee, entity.RoleAdmin}, LoginPath: "/employee-login"}
	// Customer rutas del catálogo.
	Customer = Policy{Name: "customer", Allowed: []string{entity.RoleCustomer}, LoginPath: "/customer-login"}
)

// Decide es función pura del estado de sesión: usuario con rol admitido → Allow;
// sesión cargando → Loading; en otro caso → Redirect a loginPath.
func Decide(user *entity.User, loading bool, allowed []string, loginPath string) Decision {
	if user != nil && slices.Contains(allowed, user.Role) {
		return Decision{Outcome: Allow}
	}
	if loading {
		return Decision{Outcome: Loading}
	}
	return Decision{Outcome: Redirect, Location: loginPath}
}

// Decide aplica la política.
func (p Policy) Decide(user *entity.User, loading bool) Decision {
	return Decide(user, loading, p.Allowed, p.LoginPath)
}
