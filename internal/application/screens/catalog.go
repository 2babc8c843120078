package screens

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/domain"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// CatalogMarkup recargo fijo sobre el precio de compra.
var CatalogMarkup = decimal.RequireFromString("1.25")

// CatalogUseCase catálogo para clientes.
type CatalogUseCase struct {
	sheets SheetSource
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(sheets SheetSource) *CatalogUseCase {
	return &CatalogUseCase{sheets: sheets}
}

// Load devuelve los productos cuyo type o supplier contienen search (sin distinguir mayúsculas).
func (uc *CatalogUseCase) Load(ctx context.Context, search string) (*dto.CatalogDTO, error) {
	sheets, err := uc.sheets.FetchPlywoodInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	filtered := FilterCatalog(sheets, search)
	out := &dto.CatalogDTO{Search: search, Items: make([]dto.CatalogItemDTO, 0, len(filtered))}
	for _, s := range filtered {
		out.Items = append(out.Items, CatalogItem(s))
	}
	return out, nil
}

// Item busca el producto id en el catálogo vigente.
func (uc *CatalogUseCase) Item(ctx context.Context, id string) (*dto.CatalogItemDTO, error) {
	sheets, err := uc.sheets.FetchPlywoodInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	for _, s := range sheets {
		if s.ID == id {
			item := CatalogItem(s)
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

// FilterCatalog coincidencia de subcadena sin distinguir mayúsculas contra type o supplier.
func FilterCatalog(items []entity.PlywoodSheet, search string) []entity.PlywoodSheet {
	return filterSheets(items, search, func(s entity.PlywoodSheet) []string {
		return []string{s.Type, s.Supplier}
	})
}

// CatalogItem proyecta la lámina para clientes: precio = compra × 1.25 redondeado a 2 decimales.
func CatalogItem(s entity.PlywoodSheet) dto.CatalogItemDTO {
	return dto.CatalogItemDTO{
		ID:        s.ID,
		Type:      s.Type,
		Grade:     s.Grade,
		Thickness: s.Thickness,
		Width:     s.Width,
		Length:    s.Length,
		Supplier:  s.Supplier,
		Price:     s.PurchasePrice.Mul(CatalogMarkup).Round(2),
		Available: s.Quantity,
		InStock:   s.Quantity > 0,
		LowStock:  s.IsLowStock(),
	}
}
