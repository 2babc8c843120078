package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/internal/infrastructure/memory"
)

func TestTables_InsertAsignaIDYDevuelveCopia(t *testing.T) {
	ts := memory.NewTables()
	ctx := context.Background()

	in := gateway.Row{"name": "Acme"}
	row, err := ts.From(gateway.TableSuppliers).Insert(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, row["id"])
	_, tieneID := in["id"]
	assert.False(t, tieneID, "la fila de entrada no se modifica")

	row["name"] = "mutada"
	rows, err := ts.From(gateway.TableSuppliers).Select(ctx, gateway.Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0]["name"])
}

func TestTables_FromSeparaPorNombre(t *testing.T) {
	ts := memory.NewTables()
	ctx := context.Background()

	_, err := ts.From(gateway.TableSuppliers).Insert(ctx, gateway.Row{"name": "Acme"})
	require.NoError(t, err)

	otra, err := ts.From(gateway.TableTransactions).Select(ctx, gateway.Query{})
	require.NoError(t, err)
	assert.Empty(t, otra)
	assert.Equal(t, 1, ts.Len(gateway.TableSuppliers))
	assert.Zero(t, ts.Len(gateway.TableTransactions))
}

func TestTables_SelectFiltraYOrdena(t *testing.T) {
	ts := memory.NewTables()
	ctx := context.Background()
	tbl := ts.From(gateway.TableTransactions)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, typ := range []string{"addition", "removal", "addition"} {
		_, err := tbl.Insert(ctx, gateway.Row{"type": typ, "date": base.AddDate(0, 0, i), "quantity": i + 1})
		require.NoError(t, err)
	}

	rows, err := tbl.Select(ctx, gateway.Query{OrderBy: "date", Desc: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 3, rows[0]["quantity"])
	assert.Equal(t, 1, rows[2]["quantity"])

	rows, err = tbl.Select(ctx, gateway.Eq("type", "addition"))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestTables_UpdateYDelete(t *testing.T) {
	ts := memory.NewTables()
	ctx := context.Background()
	tbl := ts.From(gateway.TablePlywoodSheets)

	row, err := tbl.Insert(ctx, gateway.Row{"id": "42", "quantity": 5})
	require.NoError(t, err)
	assert.Equal(t, "42", row["id"])

	upd, err := tbl.Update(ctx, gateway.Row{"quantity": 9}, gateway.IDField, "42")
	require.NoError(t, err)
	assert.Equal(t, 9, upd["quantity"])

	_, err = tbl.Update(ctx, gateway.Row{"quantity": 1}, gateway.IDField, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrGateway)

	require.NoError(t, tbl.Delete(ctx, gateway.IDField, "42"))
	assert.Equal(t, 0, ts.Len(gateway.TablePlywoodSheets))
	assert.NoError(t, tbl.Delete(ctx, gateway.IDField, "42"))
}

func TestTables_FailDevuelveMensajeVerbatim(t *testing.T) {
	ts := memory.NewTables()
	ts.Fail(gateway.TableSuppliers, errors.New("permission denied for table suppliers"))

	_, err := ts.From(gateway.TableSuppliers).Select(context.Background(), gateway.Query{})
	require.Error(t, err)
	assert.Equal(t, "permission denied for table suppliers", err.Error())

	ts.Fail(gateway.TableSuppliers, nil)
	_, err = ts.From(gateway.TableSuppliers).Select(context.Background(), gateway.Query{})
	assert.NoError(t, err)
}
