package screens

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// InventoryView lista de inventario montada por un navegador. Tras Mount se mantiene
// localmente: Append agrega la fila devuelta por el gateway sin volver a consultar.
type InventoryView struct {
	mu        sync.Mutex
	items     []entity.PlywoodSheet
	suppliers []entity.Supplier
}

// Replace sustituye el contenido (resultado de un montaje).
func (v *InventoryView) Replace(items []entity.PlywoodSheet, suppliers []entity.Supplier) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = append([]entity.PlywoodSheet(nil), items...)
	v.suppliers = append([]entity.Supplier(nil), suppliers...)
}

// Append agrega sheet. Si ya hay una fila con el mismo id, la del gateway la reemplaza.
func (v *InventoryView) Append(sheet entity.PlywoodSheet) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.items {
		if v.items[i].ID == sheet.ID {
			v.items[i] = sheet
			return
		}
	}
	v.items = append(v.items, sheet)
}

// Snapshot view-model filtrado por search.
func (v *InventoryView) Snapshot(search string) dto.InventoryDTO {
	v.mu.Lock()
	defer v.mu.Unlock()
	filtered := FilterInventory(v.items, search)
	out := dto.InventoryDTO{
		Search:    search,
		Items:     make([]dto.InventoryItemDTO, 0, len(filtered)),
		Suppliers: append([]entity.Supplier{}, v.suppliers...),
	}
	for _, s := range filtered {
		out.Items = append(out.Items, dto.InventoryItemDTO{PlywoodSheet: s, LowStock: s.IsLowStock()})
	}
	return out
}

// FilterInventory coincidencia de subcadena sin distinguir mayúsculas contra type, location o supplier.
func FilterInventory(items []entity.PlywoodSheet, search string) []entity.PlywoodSheet {
	return filterSheets(items, search, func(s entity.PlywoodSheet) []string {
		return []string{s.Type, s.Location, s.Supplier}
	})
}

func filterSheets(items []entity.PlywoodSheet, search string, fields func(entity.PlywoodSheet) []string) []entity.PlywoodSheet {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]entity.PlywoodSheet, 0, len(items))
	for _, s := range items {
		if term == "" {
			out = append(out, s)
			continue
		}
		for _, f := range fields(s) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// InventoryUseCase montaje de la pantalla de inventario y alta de láminas.
type InventoryUseCase struct {
	sheets    SheetStore
	suppliers SupplierSource
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(sheets SheetStore, suppliers SupplierSource) *InventoryUseCase {
	return &InventoryUseCase{sheets: sheets, suppliers: suppliers}
}

// Mount consulta láminas y proveedores en paralelo y reemplaza el contenido de view.
func (uc *InventoryUseCase) Mount(ctx context.Context, view *InventoryView) error {
	var (
		sheets    []entity.PlywoodSheet
		suppliers []entity.Supplier
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sheets, err = uc.sheets.FetchPlywoodInventory(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		suppliers, err = uc.suppliers.FetchSuppliers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("inventory: %w", err)
	}
	view.Replace(sheets, suppliers)
	return nil
}

// Add inserta la lámina y agrega a view la fila devuelta (con el id asignado por el gateway).
func (uc *InventoryUseCase) Add(ctx context.Context, view *InventoryView, sheet entity.PlywoodSheet) (*entity.PlywoodSheet, error) {
	added, err := uc.sheets.AddPlywoodSheet(ctx, sheet)
	if err != nil {
		return nil, err
	}
	view.Append(*added)
	return added, nil
}
