// Package finance implementa el agregador financiero de eventos: a partir de
// los movimientos activos de un evento produce el resumen de ingresos, gastos,
// provisiones, utilidad real y desgloses por categoría.
//
// El agregador es una función pura de su entrada: sin estado oculto,
// determinista e idempotente. Los movimientos malformados se excluyen de las
// sumas y se reportan como advertencias por entrada, nunca se coercen a cero
// en silencio.
package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/eventika/eventos-api/internal/domain/entity"
)

// DesgloseGasto acumulados de gasto por categoría.
type DesgloseGasto struct {
	Pagado    decimal.Decimal
	Pendiente decimal.Decimal
}

// Total devuelve pagado + pendiente.
func (d DesgloseGasto) Total() decimal.Decimal { return d.Pagado.Add(d.Pendiente) }

// DesgloseIngreso acumulados de ingreso por categoría.
type DesgloseIngreso struct {
	Cobrado   decimal.Decimal
	Pendiente decimal.Decimal
}

// Omitida describe un movimiento excluido del resumen y el motivo.
type Omitida struct {
	EntradaID string
	Motivo    string
}

// Resumen es el rollup financiero de un evento.
type Resumen struct {
	IngresosTotales    decimal.Decimal
	IngresosCobrados   decimal.Decimal
	IngresosPendientes decimal.Decimal
	GastosTotales      decimal.Decimal
	GastosPagados      decimal.Decimal
	GastosPendientes   decimal.Decimal
	ProvisionesTotal   decimal.Decimal
	// UtilidadReal = IngresosCobrados - GastosPagados (solo dinero que ya se movió).
	UtilidadReal decimal.Decimal
	// MargenRealPct = UtilidadReal / IngresosCobrados × 100.
	// Es 0 cuando IngresosCobrados es 0: nunca NaN ni división entre cero.
	MargenRealPct decimal.Decimal

	GastosPorCategoria      map[string]DesgloseGasto
	IngresosPorCategoria    map[string]DesgloseIngreso
	ProvisionesPorCategoria map[string]decimal.Decimal

	// Omitidas lista los movimientos excluidos por validación.
	Omitidas []Omitida
}

// VariacionPorCategoria devuelve provisión − gasto total por categoría
// (positivo = presupuesto disponible, negativo = sobregiro). Incluye las
// categorías que solo aparecen en uno de los dos lados.
func (r Resumen) VariacionPorCategoria() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(r.ProvisionesPorCategoria))
	for clave, prov := range r.ProvisionesPorCategoria {
		out[clave] = prov
	}
	for clave, g := range r.GastosPorCategoria {
		out[clave] = out[clave].Sub(g.Total())
	}
	return out
}

// ClavesGasto devuelve las claves de categoría de gasto ordenadas (para
// salidas estables: PDF, JSON de respuesta).
func (r Resumen) ClavesGasto() []string {
	claves := make([]string, 0, len(r.GastosPorCategoria))
	for c := range r.GastosPorCategoria {
		claves = append(claves, c)
	}
	sort.Strings(claves)
	return claves
}

// Summarize calcula el resumen financiero de un conjunto de movimientos
// activos de un mismo evento. Los movimientos inactivos se ignoran (el caller
// normalmente ya los filtró en la consulta); los inválidos se reportan en
// Omitidas. Las devoluciones (montos negativos) netean dentro del acumulado
// de su categoría: una devolución reduce el total pagado o pendiente, nunca
// crea un bucket negativo aparte.
func Summarize(entries []entity.LedgerEntry) Resumen {
	r := Resumen{
		GastosPorCategoria:      make(map[string]DesgloseGasto),
		IngresosPorCategoria:    make(map[string]DesgloseIngreso),
		ProvisionesPorCategoria: make(map[string]decimal.Decimal),
	}

	for _, e := range entries {
		if !e.Activo {
			continue
		}
		if err := e.Validate(); err != nil {
			r.Omitidas = append(r.Omitidas, Omitida{EntradaID: e.ID, Motivo: err.Error()})
			continue
		}
		clave := e.CategoriaClave
		if clave == "" {
			clave = entity.ClaveSinCategoria
		}
		switch e.Tipo {
		case entity.KindIngreso:
			r.IngresosTotales = r.IngresosTotales.Add(e.Total)
			d := r.IngresosPorCategoria[clave]
			if e.Liquidado {
				r.IngresosCobrados = r.IngresosCobrados.Add(e.Total)
				d.Cobrado = d.Cobrado.Add(e.Total)
			} else {
				d.Pendiente = d.Pendiente.Add(e.Total)
			}
			r.IngresosPorCategoria[clave] = d
		case entity.KindGasto:
			r.GastosTotales = r.GastosTotales.Add(e.Total)
			d := r.GastosPorCategoria[clave]
			if e.Liquidado {
				r.GastosPagados = r.GastosPagados.Add(e.Total)
				d.Pagado = d.Pagado.Add(e.Total)
			} else {
				d.Pendiente = d.Pendiente.Add(e.Total)
			}
			r.GastosPorCategoria[clave] = d
		case entity.KindProvision:
			r.ProvisionesTotal = r.ProvisionesTotal.Add(e.Total)
			r.ProvisionesPorCategoria[clave] = r.ProvisionesPorCategoria[clave].Add(e.Total)
		}
	}

	r.IngresosPendientes = r.IngresosTotales.Sub(r.IngresosCobrados)
	r.GastosPendientes = r.GastosTotales.Sub(r.GastosPagados)
	r.UtilidadReal = r.IngresosCobrados.Sub(r.GastosPagados)
	if r.IngresosCobrados.IsZero() {
		r.MargenRealPct = decimal.Zero
	} else {
		r.MargenRealPct = r.UtilidadReal.
			Div(r.IngresosCobrados).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return r
}
