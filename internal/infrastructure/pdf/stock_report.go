// Package pdf implementa la generación del reporte de inventario imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Fecha de corte              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Unidad | Tipo | Comprado | Usado |       │
//	│         Disponible | Estado                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos y productos en estado Bajo       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 92, Green: 64, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator genera el reporte de inventario en PDF usando Maroto v2.
type StockReportGenerator struct {
	businessName string
}

// NewStockReportGenerator construye el generador con el nombre que encabeza el reporte.
func NewStockReportGenerator(businessName string) *StockReportGenerator {
	return &StockReportGenerator{businessName: businessName}
}

// GenerateStockReport genera el PDF del resumen de inventario y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReport(
	_ context.Context,
	levels []*entity.StockLevel,
	asOf time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, asOf))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLevelRows(levels) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(levels))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y fecha de corte (der).
func headerRow(businessName string, asOf time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Corte: "+asOf.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de existencias.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Unidad", 1, align.Center),
		h("Tipo", 1, align.Center),
		h("Comprado", 2, align.Right),
		h("Usado", 2, align.Right),
		h("Disponible", 1, align.Right),
		h("Estado", 1, align.Center),
	)
}

// tableLevelRows: una fila por producto del libro.
func tableLevelRows(levels []*entity.StockLevel) []core.Row {
	result := make([]core.Row, 0, len(levels))
	for _, l := range levels {
		statusColor := colorGray
		if l.Status == entity.StockStatusLow {
			statusColor = colorAlert
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(
				l.Product,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				l.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				l.Type,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.TotalPurchased.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				l.TotalUsed.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.OnHand.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.Status,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor},
			)),
		))
	}
	return result
}

// footerRow: conteo total y de productos en estado Bajo.
func footerRow(levels []*entity.StockLevel) core.Row {
	low := 0
	for _, l := range levels {
		if l.Status == entity.StockStatusLow {
			low++
		}
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(
				fmt.Sprintf("%d productos en inventario, %d en estado Bajo.", len(levels), low),
				props.Text{Size: 8, Color: colorGray, Top: 2},
			),
		),
	)
}
