package screens_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/application/screens"
	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

func sheet(id, typ string, qty int) entity.PlywoodSheet {
	return entity.PlywoodSheet{
		ID:            id,
		Type:          typ,
		Grade:         "B",
		Quantity:      qty,
		Location:      "Warehouse A",
		Supplier:      "Northern Wood Co.",
		PurchasePrice: decimal.RequireFromString("40.00"),
	}
}

func tx(id string, day int) entity.Transaction {
	return entity.Transaction{
		ID:       id,
		Type:     entity.TransactionAddition,
		Quantity: 1,
		Date:     time.Date(2023, 6, day, 0, 0, 0, 0, time.UTC),
	}
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

func TestSummarize_AgregaPorTipo(t *testing.T) {
	sheets := []entity.PlywoodSheet{sheet("1", "Birch", 24), sheet("2", "Birch", 8), sheet("3", "Oak", 5)}

	got := screens.Summarize(sheets, nil)

	assert.Equal(t, 37, got.TotalQuantity)
	assert.Equal(t, 2, got.DistinctTypes)
	assert.Equal(t, 2, got.LowStockCount)
	assert.Equal(t, []dto.TypeQuantityDTO{{Name: "Birch", Quantity: 32}, {Name: "Oak", Quantity: 5}}, got.ByType)
	assert.NotNil(t, got.RecentTransactions)
	assert.Empty(t, got.RecentTransactions)
}

func TestSummarize_CincoMovimientosMasRecientes(t *testing.T) {
	txs := []entity.Transaction{tx("a", 1), tx("b", 7), tx("c", 3), tx("d", 7), tx("e", 5), tx("f", 2), tx("g", 6)}

	got := screens.Summarize(nil, txs)

	ids := make([]string, 0, len(got.RecentTransactions))
	for _, r := range got.RecentTransactions {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"b", "d", "g", "e", "c"}, ids, "fecha descendente, empates en orden original")
	assert.Equal(t, "a", txs[0].ID, "la entrada no se reordena")
}

func TestSummarize_Vacio(t *testing.T) {
	got := screens.Summarize(nil, nil)
	assert.Zero(t, got.TotalQuantity)
	assert.Zero(t, got.DistinctTypes)
	assert.Empty(t, got.ByType)
}

func TestDashboard_LoadDesdeGateway(t *testing.T) {
	ctx := context.Background()
	tables := memory.NewTables()
	plywood := usecase.NewPlywoodUseCase(tables, logger.Nop())
	txs := usecase.NewTransactionUseCase(tables, logger.Nop())

	for _, s := range []entity.PlywoodSheet{sheet("", "Birch", 24), sheet("", "Oak", 5)} {
		_, err := plywood.AddPlywoodSheet(ctx, s)
		require.NoError(t, err)
	}
	_, err := txs.AddTransaction(ctx, tx("", 4))
	require.NoError(t, err)

	got, err := screens.NewDashboardUseCase(plywood, txs).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 29, got.TotalQuantity)
	assert.Len(t, got.RecentTransactions, 1)
}

func TestDashboard_ErrorDeUnaConsultaAbortaLaPantalla(t *testing.T) {
	tables := memory.NewTables()
	tables.Fail(gateway.TableTransactions, errors.New("permission denied for table transactions"))
	plywood := usecase.NewPlywoodUseCase(tables, logger.Nop())
	txs := usecase.NewTransactionUseCase(tables, logger.Nop())

	got, err := screens.NewDashboardUseCase(plywood, txs).Load(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrGateway)
	assert.Contains(t, err.Error(), "permission denied for table transactions")
}

// ── Inventario ────────────────────────────────────────────────────────────────

func TestFilterInventory_SinDistinguirMayusculas(t *testing.T) {
	items := []entity.PlywoodSheet{sheet("1", "Birch", 24), sheet("2", "Oak", 5)}

	got := screens.FilterInventory(items, "oak")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	assert.Len(t, screens.FilterInventory(items, "  "), 2)
	assert.Len(t, screens.FilterInventory(items, "warehouse a"), 2, "coincide por ubicación")
	assert.Len(t, screens.FilterInventory(items, "NORTHERN"), 2, "coincide por proveedor")
	assert.Empty(t, screens.FilterInventory(items, "pine"))
}

// fixedStore devuelve siempre la fila con el id indicado y cuenta las lecturas.
type fixedStore struct {
	id      string
	fetches int
}

func (f *fixedStore) FetchPlywoodInventory(context.Context) ([]entity.PlywoodSheet, error) {
	f.fetches++
	return []entity.PlywoodSheet{sheet("1", "Birch", 24)}, nil
}

func (f *fixedStore) AddPlywoodSheet(_ context.Context, s entity.PlywoodSheet) (*entity.PlywoodSheet, error) {
	s.ID = f.id
	return &s, nil
}

type noSuppliers struct{}

func (noSuppliers) FetchSuppliers(context.Context) ([]entity.Supplier, error) {
	return []entity.Supplier{}, nil
}

func TestInventory_AddAgregaSinVolverAConsultar(t *testing.T) {
	ctx := context.Background()
	store := &fixedStore{id: "42"}
	uc := screens.NewInventoryUseCase(store, noSuppliers{})
	view := &screens.InventoryView{}

	require.NoError(t, uc.Mount(ctx, view))
	require.Equal(t, 1, store.fetches)

	added, err := uc.Add(ctx, view, sheet("", "Oak", 3))
	require.NoError(t, err)
	assert.Equal(t, "42", added.ID)
	assert.Equal(t, 1, store.fetches)

	snap := view.Snapshot("")
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "42", snap.Items[1].ID)
	assert.True(t, snap.Items[1].LowStock)
}

func TestInventoryView_AppendReemplazaMismoID(t *testing.T) {
	view := &screens.InventoryView{}
	view.Replace([]entity.PlywoodSheet{sheet("42", "Birch", 24)}, nil)

	view.Append(sheet("42", "Birch", 30))

	snap := view.Snapshot("")
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 30, snap.Items[0].Quantity)
	assert.NotNil(t, snap.Suppliers)
}

// ── Catálogo y carrito ────────────────────────────────────────────────────────

func TestCatalogItem_PrecioConRecargo(t *testing.T) {
	s := sheet("1", "Birch", 0)
	s.PurchasePrice = decimal.RequireFromString("45.99")

	item := screens.CatalogItem(s)

	assert.Equal(t, "57.49", item.Price.StringFixed(2))
	assert.False(t, item.InStock)
	assert.True(t, item.LowStock)
}

func TestFilterCatalog_NoFiltraPorUbicacion(t *testing.T) {
	items := []entity.PlywoodSheet{sheet("1", "Birch", 24), sheet("2", "Oak", 5)}
	assert.Len(t, screens.FilterCatalog(items, "oak"), 1)
	assert.Empty(t, screens.FilterCatalog(items, "warehouse"))
}

func TestCatalog_ItemDesconocido(t *testing.T) {
	uc := screens.NewCatalogUseCase(&fixedStore{})
	_, err := uc.Item(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	item, err := uc.Item(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Birch", item.Type)
}

func TestCart_AcumulaPorIDYCalculaTotal(t *testing.T) {
	cart := screens.NewCart()
	birch := screens.CatalogItem(sheet("1", "Birch", 24))
	oak := screens.CatalogItem(sheet("2", "Oak", 5))

	require.NoError(t, cart.Add(birch))
	require.NoError(t, cart.Add(oak))
	require.NoError(t, cart.Add(birch))

	snap := cart.Snapshot()
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, "1", snap.Lines[0].Item.ID)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, "100.00", snap.Lines[0].Subtotal.StringFixed(2))
	assert.Equal(t, 3, snap.TotalItems)
	assert.Equal(t, "150.00", snap.Total.StringFixed(2))
	assert.Equal(t, 3, cart.Count())
}

func TestCart_SinStock(t *testing.T) {
	cart := screens.NewCart()

	err := cart.Add(screens.CatalogItem(sheet("1", "Birch", 0)))
	assert.ErrorIs(t, err, domain.ErrOutOfStock)

	one := screens.CatalogItem(sheet("2", "Oak", 1))
	require.NoError(t, cart.Add(one))
	assert.ErrorIs(t, cart.Add(one), domain.ErrOutOfStock)
	assert.Equal(t, 1, cart.Count())
	assert.Len(t, cart.Snapshot().Lines, 1)
}

func TestViews_ResetVaciaCarrito(t *testing.T) {
	v := screens.NewViews()
	require.NoError(t, v.Cart().Add(screens.CatalogItem(sheet("1", "Birch", 24))))

	v.Reset()

	assert.Zero(t, v.Cart().Count())
	assert.Empty(t, v.Inventory().Snapshot("").Items)
}
