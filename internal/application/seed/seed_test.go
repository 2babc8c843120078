package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/plywood-inventory/internal/application/screens"
	"github.com/jhoicas/plywood-inventory/internal/application/seed"
	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

func TestRun_EnlazaMovimientosConLaminas(t *testing.T) {
	ctx := context.Background()
	tables := memory.NewTables()
	plywood := usecase.NewPlywoodUseCase(tables, logger.Nop())
	txs := usecase.NewTransactionUseCase(tables, logger.Nop())

	res, err := seed.Run(ctx, seed.Writers{
		Plywood:      plywood,
		Suppliers:    usecase.NewSupplierUseCase(tables, logger.Nop()),
		Transactions: txs,
	})
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Suppliers: 4, Sheets: 5, Transactions: 4}, res)

	sheets, err := plywood.FetchPlywoodInventory(ctx)
	require.NoError(t, err)
	ids := map[string]string{}
	for _, s := range sheets {
		ids[s.ID] = s.Type
	}
	list, err := txs.FetchTransactions(ctx)
	require.NoError(t, err)
	for _, tx := range list {
		assert.Contains(t, []string{"Birch", "Oak"}, ids[tx.PlywoodID])
	}

	summary := screens.Summarize(sheets, list)
	assert.Equal(t, 94, summary.TotalQuantity)
	assert.Equal(t, 1, summary.LowStockCount)
	assert.Equal(t, "Project #A2984", summary.RecentTransactions[0].Reason)
}

func TestRun_NoDuplicaSiYaHayDatos(t *testing.T) {
	ctx := context.Background()
	tables := memory.NewTables()
	w := seed.Writers{
		Plywood:      usecase.NewPlywoodUseCase(tables, logger.Nop()),
		Suppliers:    usecase.NewSupplierUseCase(tables, logger.Nop()),
		Transactions: usecase.NewTransactionUseCase(tables, logger.Nop()),
	}

	_, err := seed.Run(ctx, w)
	require.NoError(t, err)
	res, err := seed.Run(ctx, w)
	require.NoError(t, err)

	assert.Equal(t, seed.Result{Skipped: true}, res)
	assert.Equal(t, 4, tables.Len(gateway.TableSuppliers))
	assert.Equal(t, 5, tables.Len(gateway.TablePlywoodSheets))
	assert.Equal(t, 4, tables.Len(gateway.TableTransactions))
}

func TestRun_ErrorDelGateway(t *testing.T) {
	tables := memory.NewTables()
	tables.Fail(gateway.TablePlywoodSheets, errors.New("permission denied"))

	res, err := seed.Run(context.Background(), seed.Writers{
		Plywood:      usecase.NewPlywoodUseCase(tables, logger.Nop()),
		Suppliers:    usecase.NewSupplierUseCase(tables, logger.Nop()),
		Transactions: usecase.NewTransactionUseCase(tables, logger.Nop()),
	})
	assert.ErrorIs(t, err, domain.ErrGateway)
	assert.Equal(t, 4, res.Suppliers)
	assert.Zero(t, res.Sheets)
}
