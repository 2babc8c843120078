package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
	"github.com/jhoicas/plywood-inventory/internal/application/validation"
)

// PlywoodHandler CRUD de láminas (/api/plywood).
type PlywoodHandler struct {
	uc *usecase.PlywoodUseCase
}

// NewPlywoodHandler construye el handler.
func NewPlywoodHandler(uc *usecase.PlywoodUseCase) *PlywoodHandler {
	return &PlywoodHandler{uc: uc}
}

// List godoc
// @Summary      Listar láminas
// @Tags         plywood
// @Produce      json
// @Success      200  {array}  entity.PlywoodSheet
// @Router       /api/plywood [get]
func (h *PlywoodHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.FetchPlywoodInventory(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear lámina
// @Tags         plywood
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlywoodSheetRequest  true  "lámina"
// @Success      201  {object}  entity.PlywoodSheet
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/plywood [post]
func (h *PlywoodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlywoodSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return writeError(c, err)
	}
	sheet, err := in.ToEntity(GetUser(c).Name)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AddPlywoodSheet(c.Context(), sheet)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar lámina (parcial)
// @Tags         plywood
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.UpdatePlywoodSheetRequest  true  "campos a cambiar"
// @Success      200  {object}  entity.PlywoodSheet
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plywood/{id} [put]
func (h *PlywoodHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlywoodSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return writeError(c, err)
	}
	patch, err := in.ToPatch(GetUser(c).Name)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdatePlywoodSheet(c.Context(), c.Params("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lámina
// @Tags         plywood
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/plywood/{id} [delete]
func (h *PlywoodHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeletePlywoodSheet(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
