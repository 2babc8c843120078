package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
)

// ── SELECT ────────────────────────────────────────────────────────────────────

func TestBuildSelect_FiltrosYOrden(t *testing.T) {
	sql, args, err := buildSelect(gateway.TableTransactions, gateway.Query{
		Filters: []gateway.Filter{{Column: "plywood_id", Value: "42"}, {Column: "type", Value: "removal"}},
		OrderBy: "date",
		Desc:    true,
	})
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT "id", "type", "plywood_id", "quantity", "date", "performed_by", "reason", "notes" FROM "transactions"`+
			` WHERE "plywood_id" = $1 AND "type" = $2 ORDER BY "date" DESC`, sql)
	assert.Equal(t, []any{"42", "removal"}, args)
}

func TestBuildSelect_ColumnaDesconocida(t *testing.T) {
	_, _, err := buildSelect(gateway.TableSuppliers, gateway.Eq("nombre", "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "nombre"`)

	_, _, err = buildSelect("warehouses", gateway.Query{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `relation "warehouses" does not exist`)
}

// ── INSERT / UPDATE ───────────────────────────────────────────────────────────

func TestBuildInsert_ColumnasOrdenadas(t *testing.T) {
	sql, args, err := buildInsert(gateway.TableSuppliers, gateway.Row{"phone": "555", "name": "Acme"})
	require.NoError(t, err)
	assert.Equal(t,
		`INSERT INTO "suppliers" ("name", "phone") VALUES ($1, $2)`+
			` RETURNING "id", "name", "contact_person", "email", "phone", "address"`, sql)
	assert.Equal(t, []any{"Acme", "555"}, args)
}

func TestBuildUpdate_IgnoraIDEnPatch(t *testing.T) {
	patch := gateway.Row{"id": "otro", "quantity": 7}
	sql, args, err := buildUpdate(gateway.TablePlywoodSheets, patch, gateway.IDField, "42")
	require.NoError(t, err)
	assert.Contains(t, sql, `UPDATE "plywood_sheets" SET "quantity" = $1 WHERE "id" = $2 RETURNING`)
	assert.Equal(t, []any{7, "42"}, args)
	assert.Equal(t, "otro", patch["id"], "el patch del llamador no se modifica")
}

func TestBuildUpdate_PatchVacio(t *testing.T) {
	_, _, err := buildUpdate(gateway.TableProfiles, gateway.Row{}, gateway.IDField, "u1")
	assert.Error(t, err)
}
