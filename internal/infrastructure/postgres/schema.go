package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
)

//go:embed schema.sql
var schemaSQL string

// Migrate aplica el esquema (idempotente).
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}

// columns lista blanca de columnas por tabla, en el orden del SELECT.
var columns = map[string][]string{
	gateway.TableProfiles: {"id", "name", "email", "role", "company", "updated_at"},
	gateway.TablePlywoodSheets: {
		"id", "type", "grade", "thickness", "width", "length", "quantity", "location",
		"purchase_date", "purchase_price", "supplier", "notes", "last_updated", "updated_by",
	},
	gateway.TableSuppliers:    {"id", "name", "contact_person", "email", "phone", "address"},
	gateway.TableTransactions: {"id", "type", "plywood_id", "quantity", "date", "performed_by", "reason", "notes"},
}

func hasColumn(table, column string) bool {
	for _, c := range columns[table] {
		if c == column {
			return true
		}
	}
	return false
}
