// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Productos | Valor total | Stock bajo | Categorías     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOP: Producto | Categoría | Cantidad | Precio | Valor       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INVENTARIO: listado completo en orden de inserción          │
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

	"github.com/jhoicas/commodities-api/internal/application/analytics"
	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/pkg/format"
)

var _ analytics.ReportGenerator = (*ReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type ReportGenerator struct {
	title string
	fmt   *format.Formatter
}

// NewReportGenerator construye el generador. title aparece en el header y en los metadatos.
func NewReportGenerator(title string, f *format.Formatter) *ReportGenerator {
	if f == nil {
		f = format.New("en")
	}
	return &ReportGenerator{title: title, fmt: f}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) GenerateInventoryReport(
	_ context.Context,
	summary *dto.DashboardSummaryDTO,
	products []dto.ProductResponse,
) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("pdf: resumen vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.kpiRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("TOP PRODUCTOS POR VALOR"))
	m.AddRows(tableHeaderRow("Producto", "Categoría", "Cantidad", "Precio", "Valor"))
	for _, p := range summary.TopProducts {
		m.AddRows(g.tableRow(p.Name, p.Category, p.Quantity, p.Unit, p.Price, p.TotalValue, false))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow("INVENTARIO"))
	m.AddRows(tableHeaderRow("Producto", "Categoría", "Cantidad", "Precio", "Valor"))
	for _, p := range products {
		low := p.Quantity.LessThan(summary.LowStockThreshold)
		m.AddRows(g.tableRow(p.Name, p.Category, p.Quantity, p.Unit, p.Price, p.Price.Mul(p.Quantity), low))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReportGenerator) headerRow(s *dto.DashboardSummaryDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+s.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// kpiRow: las cuatro tarjetas del dashboard.
func (g *ReportGenerator) kpiRow(s *dto.DashboardSummaryDTO) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		kpi("Productos", g.fmt.Count(s.TotalProducts)),
		kpi("Valor total", "$"+g.fmt.Money(s.TotalValue)),
		kpi("Stock bajo (< "+g.fmt.Quantity(s.LowStockThreshold)+")", g.fmt.Count(s.LowStockItems)),
		kpi("Categorías", g.fmt.Count(s.TotalCategories)),
	)
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func tableHeaderRow(labels ...string) core.Row {
	sizes := []int{4, 2, 2, 2, 2}
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Right
		if i < 2 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func (g *ReportGenerator) tableRow(
	name, category string,
	qty decimal.Decimal, unit string,
	price, value decimal.Decimal,
	lowStock bool,
) core.Row {
	qtyProps := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
	if lowStock {
		qtyProps.Color = colorAlert
		qtyProps.Style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(category, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		col.New(2).Add(text.New(g.fmt.Quantity(qty)+" "+unit, qtyProps)),
		col.New(2).Add(text.New("$"+g.fmt.Money(price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New("$"+g.fmt.Money(value), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}
