// Package pdf implementa la generación del estado de cuenta de un evento.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del evento + Código  │  Fecha + Cliente     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Provisión | Gastado | Pendiente | Var.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INGRESOS: Total / Cobrado / Pendiente                      │
//	│  TOTALES: Utilidad real / Margen real                       │
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

	appfinance "github.com/eventika/eventos-api/internal/application/finance"
	"github.com/eventika/eventos-api/internal/domain/entity"
	domfinance "github.com/eventika/eventos-api/internal/domain/finance"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 46, Green: 125, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 183, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appfinance.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa finance.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el estado de cuenta y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	event *entity.Event,
	client *entity.Client,
	categorias map[string]string,
	resumen domfinance.Resumen,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta "+event.Codigo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(event, client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Desglose de gastos vs provisión por categoría
	m.AddRows(tableHeaderRow())
	for _, r := range categoryRows(resumen, categorias) {
		m.AddRows(r)
	}
	m.AddRows(gastosTotalsRow(resumen))

	// Ingresos
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(ingresosRow(resumen))

	// Utilidad y margen
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(utilidadRow(resumen))

	if len(resumen.Omitidas) > 0 {
		m.AddRows(line.NewRow(3))
		for _, r := range omitidasRows(resumen.Omitidas) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de cuenta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre y código del evento (izq), fecha y cliente (der).
func headerRow(event *entity.Event, client *entity.Client) core.Row {
	clienteNombre := "—"
	if client != nil {
		clienteNombre = client.Nombre
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(event.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(event.Codigo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Cliente: "+clienteNombre, props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New("Fecha: "+event.Fecha.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera del desglose por categoría.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 4, align.Left),
		h("Provisión", 2, align.Right),
		h("Gastado", 2, align.Right),
		h("Pendiente", 2, align.Right),
		h("Variación", 2, align.Right),
	)
}

// categoryRows: una fila por clave de categoría, en orden estable.
func categoryRows(r domfinance.Resumen, categorias map[string]string) []core.Row {
	variacion := r.VariacionPorCategoria()
	result := make([]core.Row, 0, len(r.GastosPorCategoria))
	for _, clave := range r.ClavesGasto() {
		g := r.GastosPorCategoria[clave]
		v := variacion[clave]
		varColor := colorGray
		if v.IsNegative() {
			varColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				categoryLabel(clave, categorias),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+r.ProvisionesPorCategoria[clave].StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+g.Pagado.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+g.Pendiente.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+v.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: varColor},
			)),
		))
	}
	return result
}

// gastosTotalsRow: totales de la tabla de gastos.
func gastosTotalsRow(r domfinance.Resumen) core.Row {
	b := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})
	}
	return row.New(8).Add(
		col.New(4).Add(b("TOTAL GASTOS", align.Left)),
		col.New(2).Add(b("$"+r.ProvisionesTotal.StringFixed(2), align.Right)),
		col.New(2).Add(b("$"+r.GastosPagados.StringFixed(2), align.Right)),
		col.New(2).Add(b("$"+r.GastosPendientes.StringFixed(2), align.Right)),
		col.New(2).Add(b("$"+r.ProvisionesTotal.Sub(r.GastosTotales).StringFixed(2), align.Right)),
	)
}

// ingresosRow: totales de ingresos cobrados y pendientes.
func ingresosRow(r domfinance.Resumen) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(3).Add(text.New("INGRESOS", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		})),
		col.New(3),
		col.New(3).Add(
			label("Total:"),
			label("Cobrado:"),
			label("Pendiente:"),
		),
		col.New(3).Add(
			value("$"+r.IngresosTotales.StringFixed(2)),
			value("$"+r.IngresosCobrados.StringFixed(2)),
			value("$"+r.IngresosPendientes.StringFixed(2)),
		),
	)
}

// utilidadRow: utilidad real y margen, en grande.
func utilidadRow(r domfinance.Resumen) core.Row {
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			grand("UTILIDAD REAL:"),
			text.New("MARGEN REAL:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorGray, Top: 7, Right: 1,
			}),
		),
		col.New(3).Add(
			grand("$"+r.UtilidadReal.StringFixed(2)),
			text.New(r.MargenRealPct.StringFixed(2)+"%", props.Text{
				Size: 9, Align: align.Right, Color: colorGray, Top: 7, Right: 1,
			}),
		),
	)
}

// omitidasRows: advertencias de movimientos excluidos del resumen.
func omitidasRows(omitidas []domfinance.Omitida) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("MOVIMIENTOS OMITIDOS DEL RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorRed, Top: 1,
			}),
		)),
	}
	for _, o := range omitidas {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s: %s", o.EntradaID, o.Motivo), props.Text{
				Size: 6.5, Color: colorGray, Top: 0.5, Left: 2,
			}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// categoryLabel resuelve el nombre legible de una clave; cae a la clave cruda
// si el catálogo no la tiene (categoría borrada o centinela sin_categoria).
func categoryLabel(clave string, categorias map[string]string) string {
	if clave == entity.ClaveSinCategoria {
		return "Sin categoría"
	}
	if nombre, ok := categorias[clave]; ok && nombre != "" {
		return nombre
	}
	return clave
}
