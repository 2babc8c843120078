// Package seed carga los datos de demostración (proveedores, láminas y movimientos)
// a través de las funciones de acceso a recursos.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// Writers inserciones que usa el seed.
type Writers struct {
	Plywood interface {
		AddPlywoodSheet(ctx context.Context, sheet entity.PlywoodSheet) (*entity.PlywoodSheet, error)
	}
	Suppliers interface {
		FetchSuppliers(ctx context.Context) ([]entity.Supplier, error)
		AddSupplier(ctx context.Context, s entity.Supplier) (*entity.Supplier, error)
	}
	Transactions interface {
		AddTransaction(ctx context.Context, tx entity.Transaction) (*entity.Transaction, error)
	}
}

// Result conteo de filas insertadas. Skipped indica que la base ya tenía datos.
type Result struct {
	Suppliers    int
	Sheets       int
	Transactions int
	Skipped      bool
}

// demoTransaction movimiento referido a la lámina por su posición en Sheets.
type demoTransaction struct {
	sheet int
	tx    entity.Transaction
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Suppliers proveedores de demostración.
var Suppliers = []entity.Supplier{
	{Name: "Premium Wood Supplies", ContactPerson: "Mike Peterson", Email: "mike@premiumwood.com", Phone: "555-123-4567", Address: "123 Timber Lane, Woodville, WA 98123"},
	{Name: "Forest Products Inc.", ContactPerson: "Sarah Johnson", Email: "sarah@forestproducts.com", Phone: "555-987-6543", Address: "456 Cedar Street, Pinetown, OR 97301"},
	{Name: "Budget Timber Co.", ContactPerson: "Tom Williams", Email: "tom@budgettimber.com", Phone: "555-456-7890", Address: "789 Pine Road, Oakfield, CA 90210"},
	{Name: "Luxury Hardwoods", ContactPerson: "Elizabeth Chen", Email: "elizabeth@luxuryhardwoods.com", Phone: "555-234-5678", Address: "101 Walnut Avenue, Mapleville, NY 10001"},
}

// Sheets láminas de demostración.
var Sheets = []entity.PlywoodSheet{
	{Type: "Birch", Grade: "A", Thickness: 18, Width: 1220, Length: 2440, Quantity: 24, Location: "Rack A1",
		PurchaseDate: day("2023-09-15"), PurchasePrice: decimal.RequireFromString("45.99"), Supplier: "Premium Wood Supplies",
		LastUpdated: day("2023-10-01"), UpdatedBy: "John Doe"},
	{Type: "Oak", Grade: "B", Thickness: 12, Width: 1220, Length: 2440, Quantity: 18, Location: "Rack B3",
		PurchaseDate: day("2023-08-22"), PurchasePrice: decimal.RequireFromString("38.50"), Supplier: "Forest Products Inc.",
		Notes: "Some sheets have minor defects on edges", LastUpdated: day("2023-09-28"), UpdatedBy: "Jane Smith"},
	{Type: "Pine", Grade: "C", Thickness: 9, Width: 1220, Length: 2440, Quantity: 32, Location: "Rack C2",
		PurchaseDate: day("2023-10-05"), PurchasePrice: decimal.RequireFromString("29.99"), Supplier: "Budget Timber Co.",
		LastUpdated: day("2023-10-05"), UpdatedBy: "Alice Johnson"},
	{Type: "Maple", Grade: "A", Thickness: 24, Width: 1220, Length: 2440, Quantity: 12, Location: "Rack A4",
		PurchaseDate: day("2023-09-30"), PurchasePrice: decimal.RequireFromString("62.75"), Supplier: "Premium Wood Supplies",
		LastUpdated: day("2023-10-02"), UpdatedBy: "John Doe"},
	{Type: "Walnut", Grade: "A", Thickness: 18, Width: 1220, Length: 2440, Quantity: 8, Location: "Rack D1",
		PurchaseDate: day("2023-09-18"), PurchasePrice: decimal.RequireFromString("85.00"), Supplier: "Luxury Hardwoods",
		Notes: "Premium quality, store with care", LastUpdated: day("2023-09-29"), UpdatedBy: "Robert Brown"},
}

var transactions = []demoTransaction{
	{0, entity.Transaction{Type: entity.TransactionAddition, Quantity: 25, Date: day("2023-09-15"), PerformedBy: "John Doe", Reason: "Initial stock"}},
	{0, entity.Transaction{Type: entity.TransactionRemoval, Quantity: 1, Date: day("2023-09-25"), PerformedBy: "Jane Smith", Reason: "Project #A2984"}},
	{1, entity.Transaction{Type: entity.TransactionAddition, Quantity: 20, Date: day("2023-08-22"), PerformedBy: "John Doe", Reason: "Restocking"}},
	{1, entity.Transaction{Type: entity.TransactionRemoval, Quantity: 2, Date: day("2023-09-10"), PerformedBy: "Alice Johnson", Reason: "Project #B3421"}},
}

// Run inserta los datos de demostración. Los ids los asigna el gateway; los movimientos
// se enlazan con el id devuelto para su lámina. Si ya hay proveedores no inserta nada.
func Run(ctx context.Context, w Writers) (Result, error) {
	var res Result
	existing, err := w.Suppliers.FetchSuppliers(ctx)
	if err != nil {
		return res, fmt.Errorf("seed: proveedores existentes: %w", err)
	}
	if len(existing) > 0 {
		res.Skipped = true
		return res, nil
	}

	for _, s := range Suppliers {
		if _, err := w.Suppliers.AddSupplier(ctx, s); err != nil {
			return res, fmt.Errorf("seed: proveedor %s: %w", s.Name, err)
		}
		res.Suppliers++
	}

	ids := make([]string, len(Sheets))
	for i, s := range Sheets {
		added, err := w.Plywood.AddPlywoodSheet(ctx, s)
		if err != nil {
			return res, fmt.Errorf("seed: lámina %s: %w", s.Type, err)
		}
		ids[i] = added.ID
		res.Sheets++
	}

	for _, d := range transactions {
		tx := d.tx
		tx.PlywoodID = ids[d.sheet]
		if _, err := w.Transactions.AddTransaction(ctx, tx); err != nil {
			return res, fmt.Errorf("seed: movimiento %s: %w", tx.Reason, err)
		}
		res.Transactions++
	}
	return res, nil
}
