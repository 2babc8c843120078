// Package pdf genera el reporte de existencias en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha        │  Generado por               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total láminas / Tipos / Stock bajo / Valor         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Grado | Medidas | Ubicación | Cant | Valor    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/plywood-inventory/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 200, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.Generator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct {
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador. Los números se formatean según lang.
func NewMarotoReportGenerator(lang language.Tag) *MarotoReportGenerator {
	return &MarotoReportGenerator{printer: message.NewPrinter(lang)}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(_ context.Context, r *report.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plywood Inventory Report", true).
		WithAuthor(r.GeneratedBy, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(r.Lines)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *report.StockReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("PLYWOOD INVENTORY", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Stock report "+r.GeneratedAt.Format("2006-01-02 15:04")+" UTC", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated by", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(r.GeneratedBy, "-"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func (g *MarotoReportGenerator) summaryRow(r *report.StockReport) core.Row {
	cell := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Align: align.Center, Color: color}),
		)
	}
	return row.New(16).Add(
		cell("Total sheets", g.printer.Sprintf("%d", r.Summary.TotalQuantity), colorPrimary),
		cell("Types", g.printer.Sprintf("%d", r.Summary.DistinctTypes), colorPrimary),
		cell("Low stock", g.printer.Sprintf("%d", r.Summary.LowStockCount), colorAlert),
		cell("Stock value", g.money(r.TotalValue), colorPrimary),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Type", 2, align.Left),
		h("Grade", 1, align.Center),
		h("Size (mm)", 3, align.Left),
		h("Location", 2, align.Left),
		h("Qty", 1, align.Right),
		h("Unit cost", 1, align.Right),
		h("Value", 2, align.Right),
	)
}

func (g *MarotoReportGenerator) tableRows(lines []report.Line) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		s := l.Sheet
		qty := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if s.IsLowStock() {
			qty.Color = colorAlert
			qty.Style = fontstyle.Bold
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(s.Type, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(s.Grade, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(
				g.printer.Sprintf("%d × %d × %d", s.Thickness, s.Width, s.Length),
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(s.Location, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(g.printer.Sprintf("%d", s.Quantity), qty)),
			col.New(1).Add(text.New(g.money(s.PurchasePrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.money(l.Value), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea d con separador de miles y dos decimales según el idioma del generador.
func (g *MarotoReportGenerator) money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return g.printer.Sprintf("$%.2f", f)
}
