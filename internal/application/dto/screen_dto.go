package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// TypeQuantityDTO barra del gráfico de inventario por tipo.
type TypeQuantityDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DashboardDTO respuesta de GET /dashboard.
type DashboardDTO struct {
	TotalQuantity      int                  `json:"totalQuantity"`
	DistinctTypes      int                  `json:"distinctTypes"`
	LowStockCount      int                  `json:"lowStockCount"`
	ByType             []TypeQuantityDTO    `json:"byType"`
	RecentTransactions []entity.Transaction `json:"recentTransactions"`
}

// InventoryItemDTO fila de la tabla de inventario.
type InventoryItemDTO struct {
	entity.PlywoodSheet
	LowStock bool `json:"lowStock"`
}

// InventoryDTO respuesta de GET /inventory.
type InventoryDTO struct {
	Search    string             `json:"search"`
	Items     []InventoryItemDTO `json:"items"`
	Suppliers []entity.Supplier  `json:"suppliers"`
}

// CatalogItemDTO producto visible para clientes: sin ubicación ni precio de compra.
type CatalogItemDTO struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Grade     string          `json:"grade"`
	Thickness int             `json:"thickness"`
	Width     int             `json:"width"`
	Length    int             `json:"length"`
	Supplier  string          `json:"supplier"`
	Price     decimal.Decimal `json:"price"`
	Available int             `json:"-"`
	InStock   bool            `json:"inStock"`
	LowStock  bool            `json:"lowStock"`
}

// CatalogDTO respuesta de GET /customer/catalog.
type CatalogDTO struct {
	Search    string           `json:"search"`
	Items     []CatalogItemDTO `json:"items"`
	CartItems int              `json:"cartItems"`
}

// CartLineDTO línea del carrito.
type CartLineDTO struct {
	Item     CatalogItemDTO  `json:"item"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartDTO respuesta de GET/POST /customer/cart.
type CartDTO struct {
	Lines      []CartLineDTO   `json:"lines"`
	TotalItems int             `json:"totalItems"`
	Total      decimal.Decimal `json:"total"`
}

// AddToCartRequest cuerpo de POST /customer/cart.
type AddToCartRequest struct {
	ItemID string `json:"itemId" form:"itemId" validate:"required"`
}
