package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/application/guard"
)

// RequireGuard aplica la política p antes de montar la pantalla:
//   - Allow: continúa y deja el usuario en Locals
//   - Loading: 202 con Retry-After, la sesión del navegador aún se está resolviendo
//   - Redirect: 302 al login; en /api/* 401 con el login sugerido
func RequireGuard(p guard.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := GetStore(c)
		if st == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "sesión no inicializada"})
		}
		user := st.CurrentUser()
		d := p.Decide(user, st.IsLoading())
		switch d.Outcome {
		case guard.Allow:
			c.Locals(LocalUser, user)
			return c.Next()
		case guard.Loading:
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusAccepted).JSON(dto.LoadingResponse{Loading: true})
		default:
			if isAPI(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code: "UNAUTHORIZED", Message: "se requiere iniciar sesión", Redirect: d.Location,
				})
			}
			return c.Redirect(d.Location, fiber.StatusFound)
		}
	}
}

func isAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}
