// Package pdf genera el reporte de inventario con Maroto v2.
//
// Layout (A4):
//
//	┌───────────────────────────────────────────────────────┐
//	│  Inventory Report                                     │
//	│  Generated on: <fecha>                                │
//	│  TABLA: Code | Product | Company | Quantity | Date    │
//	│  (filas con fondo alterno)                            │
//	├───────────────────────────────────────────────────────┤
//	│  Página 2, solo si hay registros:                     │
//	│  Company Summary: Company | Total Items | Unique ...   │
//	└───────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/catalogo-inventario/internal/application/inventory"
	"github.com/jhoicas/catalogo-inventario/internal/application/ports"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

var _ ports.InventoryReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 235, Green: 240, Blue: 246}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.InventoryReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now     func() time.Time
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador. Las cantidades se formatean con separador de miles en inglés.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{
		now:     time.Now,
		printer: message.NewPrinter(language.English),
	}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, items []*entity.InventoryItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventory Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRows("Inventory Report", "Generated on: "+g.now().Format("2006-01-02 15:04:05"))...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow([]column{
		{"Code", 2, align.Left},
		{"Product", 3, align.Left},
		{"Company", 3, align.Left},
		{"Quantity", 2, align.Right},
		{"Date", 2, align.Center},
	}))
	if len(items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No inventory records", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for i, it := range items {
		m.AddRows(stripe(i, row.New(7).Add(
			cell(it.Product.Code, 2, align.Left),
			cell(it.Product.Name, 3, align.Left),
			cell(it.Company.Name, 3, align.Left),
			cell(g.printer.Sprintf("%d", it.Quantity), 2, align.Right),
			cell(it.CreatedAt.Format("2006-01-02"), 2, align.Center),
		)))
	}

	if len(items) > 0 {
		m.AddPages(g.summaryPage(inventory.SummarizeByCompany(items)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) summaryPage(summary []inventory.CompanySummary) core.Page {
	p := page.New()
	p.Add(titleRows("Company Summary", "")...)
	p.Add(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	p.Add(headerRow([]column{
		{"Company", 6, align.Left},
		{"Total Items", 3, align.Right},
		{"Unique Products", 3, align.Right},
	}))
	for i, s := range summary {
		p.Add(stripe(i, row.New(7).Add(
			cell(s.Name, 6, align.Left),
			cell(g.printer.Sprintf("%d", s.TotalItems), 3, align.Right),
			cell(g.printer.Sprintf("%d", s.UniqueProducts), 3, align.Right),
		)))
	}
	return p
}

func titleRows(title, subtitle string) []core.Row {
	rows := []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2}),
		)),
	}
	if subtitle != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(subtitle, props.Text{Size: 8, Color: colorGray}),
		)))
	}
	return rows
}

type column struct {
	label string
	size  int
	align align.Type
}

// headerRow cabecera con fondo de color primario.
func headerRow(cols []column) core.Row {
	r := row.New(8)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return r.WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1}))
}

// stripe sombrea las filas impares.
func stripe(i int, r core.Row) core.Row {
	if i%2 == 1 {
		return r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}
