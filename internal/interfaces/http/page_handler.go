package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
)

// PageHandler pantallas sin datos: portada, formularios, placeholders y 404.
type PageHandler struct{}

// NewPageHandler construye el handler.
func NewPageHandler() *PageHandler { return &PageHandler{} }

// Home portada con los dos accesos.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title":    "PlyInventory",
		"subtitle": "Complete Plywood Inventory Management System",
		"links": fiber.Map{
			"employee": "/employee-login",
			"customer": "/customer-login",
		},
	})
}

// Page describe un formulario (login o registro).
func (h *PageHandler) Page(title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.PageResponse{Path: c.Path(), Title: title})
	}
}

// UnderConstruction placeholder de una sección protegida aún no implementada.
func (h *PageHandler) UnderConstruction(title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.PageResponse{Path: c.Path(), Title: title, Message: "This page is under construction."})
	}
}

// Redirect ruta heredada.
func (h *PageHandler) Redirect(location string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Redirect(location, fiber.StatusFound)
	}
}

// NotFound cualquier ruta no registrada.
func (h *PageHandler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Code: "NOT_FOUND", Message: "Oops! Page not found", Redirect: "/",
	})
}
