package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/application/screens"
	"github.com/jhoicas/plywood-inventory/internal/application/validation"
)

// ScreenHandler pantallas con datos: dashboard, inventario, catálogo y carrito.
type ScreenHandler struct {
	dashboard *screens.DashboardUseCase
	inventory *screens.InventoryUseCase
	catalog   *screens.CatalogUseCase
}

// NewScreenHandler construye el handler.
func NewScreenHandler(dashboard *screens.DashboardUseCase, inventory *screens.InventoryUseCase, catalog *screens.CatalogUseCase) *ScreenHandler {
	return &ScreenHandler{dashboard: dashboard, inventory: inventory, catalog: catalog}
}

// Dashboard godoc
// @Summary      Resumen del inventario
// @Tags         screens
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /dashboard [get]
func (h *ScreenHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.Load(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Monta la lista de inventario y la filtra por search
// @Tags         screens
// @Produce      json
// @Param        search  query  string  false  "texto en tipo, ubicación o proveedor"
// @Success      200  {object}  dto.InventoryDTO
// @Router       /inventory [get]
func (h *ScreenHandler) Inventory(c *fiber.Ctx) error {
	view := GetStore(c).Views().Inventory()
	if err := h.inventory.Mount(c.Context(), view); err != nil {
		return writeError(c, err)
	}
	return c.JSON(view.Snapshot(c.Query("search")))
}

// AddSheet godoc
// @Summary      Agrega una lámina y la muestra sin volver a consultar
// @Tags         screens
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlywoodSheetRequest  true  "lámina"
// @Success      201  {object}  dto.InventoryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /inventory [post]
func (h *ScreenHandler) AddSheet(c *fiber.Ctx) error {
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
	view := GetStore(c).Views().Inventory()
	if _, err := h.inventory.Add(c.Context(), view, sheet); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view.Snapshot(c.Query("search")))
}

// Catalog godoc
// @Summary      Catálogo de clientes con precio de venta
// @Tags         screens
// @Produce      json
// @Param        search  query  string  false  "texto en tipo o proveedor"
// @Success      200  {object}  dto.CatalogDTO
// @Router       /customer/catalog [get]
func (h *ScreenHandler) Catalog(c *fiber.Ctx) error {
	out, err := h.catalog.Load(c.Context(), c.Query("search"))
	if err != nil {
		return writeError(c, err)
	}
	out.CartItems = GetStore(c).Views().Cart().Count()
	return c.JSON(out)
}

// Cart godoc
// @Summary      Carrito local del navegador
// @Tags         screens
// @Produce      json
// @Success      200  {object}  dto.CartDTO
// @Router       /customer/cart [get]
func (h *ScreenHandler) Cart(c *fiber.Ctx) error {
	return c.JSON(GetStore(c).Views().Cart().Snapshot())
}

// AddToCart godoc
// @Summary      Agrega una unidad del producto al carrito
// @Tags         screens
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "itemId"
// @Success      201  {object}  dto.CartDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /customer/cart [post]
func (h *ScreenHandler) AddToCart(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return writeError(c, err)
	}
	item, err := h.catalog.Item(c.Context(), in.ItemID)
	if err != nil {
		return writeError(c, err)
	}
	cart := GetStore(c).Views().Cart()
	if err := cart.Add(*item); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cart.Snapshot())
}
