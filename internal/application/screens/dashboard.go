package screens

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

const recentTransactions = 5 // movimientos en el widget del dashboard

// DashboardUseCase genera el resumen del inventario.
type DashboardUseCase struct {
	sheets       SheetSource
	transactions TransactionSource
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(sheets SheetSource, transactions TransactionSource) *DashboardUseCase {
	return &DashboardUseCase{sheets: sheets, transactions: transactions}
}

// Load consulta láminas y movimientos en paralelo (sin orden entre ambas) y agrega.
// Cualquier error aborta la pantalla completa.
func (uc *DashboardUseCase) Load(ctx context.Context) (*dto.DashboardDTO, error) {
	var (
		sheets []entity.PlywoodSheet
		txs    []entity.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sheets, err = uc.sheets.FetchPlywoodInventory(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = uc.transactions.FetchTransactions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	summary := Summarize(sheets, txs)
	return &summary, nil
}

// Summarize agrega láminas y movimientos:
//   - TotalQuantity suma de cantidades
//   - DistinctTypes cardinalidad de type
//   - LowStockCount láminas con cantidad < 10
//   - ByType cantidad por tipo en orden de primera aparición
//   - RecentTransactions los 5 más recientes (fecha descendente, empates en orden original)
func Summarize(sheets []entity.PlywoodSheet, txs []entity.Transaction) dto.DashboardDTO {
	out := dto.DashboardDTO{
		ByType:             []dto.TypeQuantityDTO{},
		RecentTransactions: []entity.Transaction{},
	}
	index := make(map[string]int, len(sheets))
	for _, s := range sheets {
		out.TotalQuantity += s.Quantity
		if s.IsLowStock() {
			out.LowStockCount++
		}
		if i, ok := index[s.Type]; ok {
			out.ByType[i].Quantity += s.Quantity
			continue
		}
		index[s.Type] = len(out.ByType)
		out.ByType = append(out.ByType, dto.TypeQuantityDTO{Name: s.Type, Quantity: s.Quantity})
	}
	out.DistinctTypes = len(out.ByType)

	recent := make([]entity.Transaction, len(txs))
	copy(recent, txs)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > recentTransactions {
		recent = recent[:recentTransactions]
	}
	out.RecentTransactions = append(out.RecentTransactions, recent...)
	return out
}
