// Package screens arma los view-models de las pantallas (dashboard, inventario,
// catálogo y carrito) a partir de las funciones de acceso a recursos.
package screens

import (
	"context"

	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// SheetSource lectura de láminas.
type SheetSource interface {
	FetchPlywoodInventory(ctx context.Context) ([]entity.PlywoodSheet, error)
}

// SheetStore lectura e inserción de láminas.
type SheetStore interface {
	SheetSource
	AddPlywoodSheet(ctx context.Context, sheet entity.PlywoodSheet) (*entity.PlywoodSheet, error)
}

// SupplierSource lectura de proveedores.
type SupplierSource interface {
	FetchSuppliers(ctx context.Context) ([]entity.Supplier, error)
}

// TransactionSource lectura del log de movimientos.
type TransactionSource interface {
	FetchTransactions(ctx context.Context) ([]entity.Transaction, error)
}
