package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

func birchSheet() entity.PlywoodSheet {
	return entity.PlywoodSheet{
		Type:          "Birch",
		Grade:         "A",
		Thickness:     18,
		Width:         1220,
		Length:        2440,
		Quantity:      24,
		Location:      "Warehouse A",
		PurchaseDate:  time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		PurchasePrice: decimal.RequireFromString("45.99"),
		Supplier:      "Northern Wood Co.",
		UpdatedBy:     "john@example.com",
	}
}

// ── Plywood ───────────────────────────────────────────────────────────────────

func TestPlywood_FetchVacioNoEsNil(t *testing.T) {
	uc := usecase.NewPlywoodUseCase(memory.NewTables(), logger.Nop())
	sheets, err := uc.FetchPlywoodInventory(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, sheets)
	assert.Empty(t, sheets)
}

func TestPlywood_AddDevuelveIDAsignado(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPlywoodUseCase(memory.NewTables(), logger.Nop())

	added, err := uc.AddPlywoodSheet(ctx, birchSheet())
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Birch", added.Type)
	assert.True(t, added.PurchasePrice.Equal(decimal.RequireFromString("45.99")))
	assert.False(t, added.LastUpdated.IsZero())

	sheets, err := uc.FetchPlywoodInventory(ctx)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, added.ID, sheets[0].ID)
	assert.Equal(t, 24, sheets[0].Quantity)
}

func TestPlywood_UpdateYDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPlywoodUseCase(memory.NewTables(), logger.Nop())
	added, err := uc.AddPlywoodSheet(ctx, birchSheet())
	require.NoError(t, err)

	qty := 8
	updated, err := uc.UpdatePlywoodSheet(ctx, added.ID, usecase.PlywoodSheetPatch{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Quantity)
	assert.Equal(t, "Birch", updated.Type, "los campos fuera del patch no cambian")
	assert.True(t, updated.IsLowStock())

	_, err = uc.UpdatePlywoodSheet(ctx, "no-existe", usecase.PlywoodSheetPatch{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.DeletePlywoodSheet(ctx, added.ID))
	sheets, err := uc.FetchPlywoodInventory(ctx)
	require.NoError(t, err)
	assert.Empty(t, sheets)
}

func TestPlywood_DecodificaFilasEnTexto(t *testing.T) {
	ctx := context.Background()
	tables := memory.NewTables()
	_, err := tables.From(gateway.TablePlywoodSheets).Insert(ctx, gateway.Row{
		"id":             "42",
		"type":           "Oak",
		"quantity":       float64(5),
		"purchase_date":  "2023-06-20",
		"purchase_price": "62.50",
		"notes":          nil,
		"last_updated":   "2023-06-20T10:00:00Z",
	})
	require.NoError(t, err)

	sheets, err := usecase.NewPlywoodUseCase(tables, logger.Nop()).FetchPlywoodInventory(ctx)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	s := sheets[0]
	assert.Equal(t, "42", s.ID)
	assert.Equal(t, 5, s.Quantity)
	assert.Equal(t, time.Date(2023, 6, 20, 0, 0, 0, 0, time.UTC), s.PurchaseDate)
	assert.Equal(t, "62.5", s.PurchasePrice.String())
	assert.Empty(t, s.Notes)
}

func TestPlywood_ErrorDelGatewayVerbatim(t *testing.T) {
	tables := memory.NewTables()
	tables.Fail(gateway.TablePlywoodSheets, errors.New(`new row violates check constraint "plywood_sheets_quantity_check"`))
	uc := usecase.NewPlywoodUseCase(tables, logger.Nop())

	_, err := uc.AddPlywoodSheet(context.Background(), birchSheet())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGateway)
	assert.Equal(t, `new row violates check constraint "plywood_sheets_quantity_check"`, err.Error())

	_, err = uc.FetchPlywoodInventory(context.Background())
	assert.ErrorIs(t, err, domain.ErrGateway)
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

func TestSuppliers_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSupplierUseCase(memory.NewTables(), logger.Nop())

	added, err := uc.AddSupplier(ctx, entity.Supplier{Name: "Northern Wood Co.", ContactPerson: "Mike Johnson", Email: "mike@northernwood.com"})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	phone := "555-123-4567"
	updated, err := uc.UpdateSupplier(ctx, added.ID, usecase.SupplierPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Mike Johnson", updated.ContactPerson)

	all, err := uc.FetchSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, uc.DeleteSupplier(ctx, added.ID))
	all, err = uc.FetchSuppliers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

// ── Transactions ──────────────────────────────────────────────────────────────

func TestTransactions_OrdenadasPorFechaDescendente(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewTransactionUseCase(memory.NewTables(), logger.Nop())
	base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, d := range []int{3, 1, 7} {
		_, err := uc.AddTransaction(ctx, entity.Transaction{
			Type:      entity.TransactionAddition,
			PlywoodID: "1",
			Quantity:  i + 1,
			Date:      base.AddDate(0, 0, d),
		})
		require.NoError(t, err)
	}

	txs, err := uc.FetchTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{txs[0].Quantity, txs[1].Quantity, txs[2].Quantity})
	assert.NotEmpty(t, txs[0].ID)
}

func TestTransactions_SinFechaUsaAhora(t *testing.T) {
	uc := usecase.NewTransactionUseCase(memory.NewTables(), logger.Nop())
	tx, err := uc.AddTransaction(context.Background(), entity.Transaction{Type: entity.TransactionRemoval, PlywoodID: "1", Quantity: 2})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), tx.Date, 5*time.Second)
}

// ── Profiles ──────────────────────────────────────────────────────────────────

func TestProfiles_GetCreateUpdate(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProfileUseCase(memory.NewTables(), logger.Nop())

	p, err := uc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, p)

	created, err := uc.CreateProfile(ctx, entity.Profile{ID: "u1", Name: "Jane", Email: "jane@acme.com", Role: entity.RoleCustomer, Company: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.ID)
	assert.Equal(t, "Acme", created.Company)

	role := entity.RoleEmployee
	updated, err := uc.UpdateProfile(ctx, "u1", usecase.ProfilePatch{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, updated.Role)
	assert.Equal(t, "Jane", updated.Name)

	got, err := uc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.RoleEmployee, got.Role)
}
