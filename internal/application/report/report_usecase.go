// Package report genera el reporte de existencias del inventario.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/application/screens"
	"github.com/jhoicas/plywood-inventory/internal/domain/entity"
)

// Line fila del reporte: lámina y valor de compra de sus existencias.
type Line struct {
	Sheet entity.PlywoodSheet
	Value decimal.Decimal // quantity × purchasePrice
}

// StockReport datos ya agregados que recibe el generador.
type StockReport struct {
	GeneratedAt time.Time
	GeneratedBy string
	Lines       []Line
	Summary     dto.DashboardDTO
	TotalValue  decimal.Decimal
}

// Generator construye el documento del reporte.
type Generator interface {
	GenerateStockReport(ctx context.Context, r *StockReport) ([]byte, error)
}

// UseCase arma el reporte a partir de la tabla plywood_sheets.
type UseCase struct {
	sheets    screens.SheetSource
	generator Generator
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(sheets screens.SheetSource, generator Generator) *UseCase {
	return &UseCase{sheets: sheets, generator: generator, now: time.Now}
}

// Build agrega las existencias sin generar el documento.
func (uc *UseCase) Build(ctx context.Context, generatedBy string) (*StockReport, error) {
	sheets, err := uc.sheets.FetchPlywoodInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: obtener inventario: %w", err)
	}
	r := &StockReport{
		GeneratedAt: uc.now().UTC(),
		GeneratedBy: generatedBy,
		Lines:       make([]Line, 0, len(sheets)),
		Summary:     screens.Summarize(sheets, nil),
		TotalValue:  decimal.Zero,
	}
	for _, s := range sheets {
		v := s.PurchasePrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
		r.Lines = append(r.Lines, Line{Sheet: s, Value: v})
		r.TotalValue = r.TotalValue.Add(v)
	}
	return r, nil
}

// Download genera el PDF y su nombre de archivo.
func (uc *UseCase) Download(ctx context.Context, generatedBy string) (pdfBytes []byte, filename string, err error) {
	r, err := uc.Build(ctx, generatedBy)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateStockReport(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("inventario_%s.pdf", r.GeneratedAt.Format("20060102"))
	return pdfBytes, filename, nil
}
