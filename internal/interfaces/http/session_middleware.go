package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/plywood-inventory/internal/application/session"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// Locals keys del estado de sesión en Fiber.
const (
	LocalStore = "session_store"
	LocalUser  = "session_user"
)

const sessionCookieTTL = 30 * 24 * time.Hour

// SessionMiddleware identifica al navegador por cookie (uuid) y carga su session.Store en Locals.
// Un valor ausente o que no es uuid se reemplaza por uno nuevo.
func SessionMiddleware(registry *session.Registry, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// el valor de Cookies apunta al buffer de la petición; sid vive en el Registry
		sid := strings.Clone(c.Cookies(cookieName))
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    sid,
				Path:     "/",
				Expires:  time.Now().Add(sessionCookieTTL),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(LocalStore, registry.Get(c.Context(), sid))
		return c.Next()
	}
}

// GetStore devuelve el Store del navegador (después de SessionMiddleware).
func GetStore(c *fiber.Ctx) *session.Store {
	st, _ := c.Locals(LocalStore).(*session.Store)
	return st
}

// GetUser devuelve el usuario admitido por RequireGuard.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}
