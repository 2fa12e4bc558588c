package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/internal/domain/finance"
)

// entrada construye un movimiento válido con total = subtotal (impuesto 0).
func entrada(id, tipo, categoria string, total float64, liquidado bool) entity.LedgerEntry {
	return entity.LedgerEntry{
		ID:             id,
		EventoID:       "evt-1",
		CategoriaClave: categoria,
		Tipo:           tipo,
		Subtotal:       decimal.NewFromFloat(total),
		Impuesto:       decimal.Zero,
		Total:          decimal.NewFromFloat(total),
		Liquidado:      liquidado,
		Activo:         true,
	}
}

// Escenario de referencia: provisión 1000 (SP), gasto pagado 600 (SP),
// gasto pendiente 400 (MAT), ingreso cobrado 2000.
func escenarioBase() []entity.LedgerEntry {
	return []entity.LedgerEntry{
		entrada("m1", entity.KindProvision, "sp", 1000, false),
		entrada("m2", entity.KindGasto, "sp", 600, true),
		entrada("m3", entity.KindGasto, "mat", 400, false),
		entrada("m4", entity.KindIngreso, "", 2000, true),
	}
}

func TestSummarize_EscenarioBase(t *testing.T) {
	r := finance.Summarize(escenarioBase())

	assert.True(t, r.GastosTotales.Equal(decimal.NewFromInt(1000)), "gastos_totales: %s", r.GastosTotales)
	assert.True(t, r.GastosPagados.Equal(decimal.NewFromInt(600)), "gastos_pagados: %s", r.GastosPagados)
	assert.True(t, r.GastosPendientes.Equal(decimal.NewFromInt(400)), "gastos_pendientes: %s", r.GastosPendientes)
	assert.True(t, r.IngresosCobrados.Equal(decimal.NewFromInt(2000)), "ingresos_cobrados: %s", r.IngresosCobrados)
	assert.True(t, r.ProvisionesTotal.Equal(decimal.NewFromInt(1000)), "provisiones_total: %s", r.ProvisionesTotal)
	assert.True(t, r.UtilidadReal.Equal(decimal.NewFromInt(1400)), "utilidad_real: %s", r.UtilidadReal)
	assert.True(t, r.MargenRealPct.Equal(decimal.NewFromInt(70)), "margen_real_pct: %s", r.MargenRealPct)
	assert.Empty(t, r.Omitidas)
}

// Invariante: gastos_totales = gastos_pagados + gastos_pendientes.
func TestSummarize_GastosTotalesEsPagadosMasPendientes(t *testing.T) {
	entradas := []entity.LedgerEntry{
		entrada("m1", entity.KindGasto, "a", 123.45, true),
		entrada("m2", entity.KindGasto, "a", 67.89, false),
		entrada("m3", entity.KindGasto, "b", 910.11, true),
		entrada("m4", entity.KindGasto, "", 12.13, false),
	}
	r := finance.Summarize(entradas)
	assert.True(t, r.GastosTotales.Equal(r.GastosPagados.Add(r.GastosPendientes)),
		"totales %s != pagados %s + pendientes %s", r.GastosTotales, r.GastosPagados, r.GastosPendientes)
}

// Sin ingresos cobrados el margen es 0, nunca NaN ni división entre cero.
func TestSummarize_MargenCeroSinIngresosCobrados(t *testing.T) {
	entradas := []entity.LedgerEntry{
		entrada("m1", entity.KindGasto, "a", 500, true),
		entrada("m2", entity.KindIngreso, "", 1000, false), // aún no cobrado
	}
	r := finance.Summarize(entradas)
	assert.True(t, r.IngresosCobrados.IsZero())
	assert.True(t, r.MargenRealPct.IsZero(), "margen debe ser 0, fue %s", r.MargenRealPct)
	assert.True(t, r.UtilidadReal.Equal(decimal.NewFromInt(-500)))
}

// Una devolución netea dentro de su categoría, no crea un bucket negativo aparte.
func TestSummarize_DevolucionNeteaEnSuCategoria(t *testing.T) {
	dev := entrada("m3", entity.KindGasto, "mat", -150, false)
	dev.Devolucion = true
	dev.Subtotal = decimal.NewFromInt(-150)
	dev.Total = decimal.NewFromInt(-150)

	entradas := []entity.LedgerEntry{
		entrada("m1", entity.KindGasto, "mat", 400, false),
		dev,
	}
	r := finance.Summarize(entradas)

	require.Len(t, r.GastosPorCategoria, 1, "solo debe existir el bucket mat")
	assert.True(t, r.GastosPorCategoria["mat"].Pendiente.Equal(decimal.NewFromInt(250)),
		"pendiente de mat debe netearse a 250, fue %s", r.GastosPorCategoria["mat"].Pendiente)
	assert.True(t, r.GastosPendientes.Equal(decimal.NewFromInt(250)))
}

// Movimientos sin categoría van al bucket sin_categoria, nunca se descartan.
func TestSummarize_SinCategoriaVaAlBucketCentinela(t *testing.T) {
	entradas := []entity.LedgerEntry{
		entrada("m1", entity.KindGasto, "", 100, true),
	}
	r := finance.Summarize(entradas)
	d, ok := r.GastosPorCategoria[entity.ClaveSinCategoria]
	require.True(t, ok, "debe existir el bucket %s", entity.ClaveSinCategoria)
	assert.True(t, d.Pagado.Equal(decimal.NewFromInt(100)))
}

// Movimientos malformados se excluyen de las sumas y se reportan en Omitidas.
func TestSummarize_MalformadosSeOmitenConMotivo(t *testing.T) {
	rota := entrada("m2", entity.KindGasto, "a", 100, true)
	rota.Total = decimal.NewFromInt(150) // total != subtotal + impuesto

	negativa := entrada("m3", entity.KindGasto, "a", -50, false) // sin flag devolución
	tipoRaro := entrada("m4", "prestamo", "a", 10, false)

	entradas := []entity.LedgerEntry{
		entrada("m1", entity.KindGasto, "a", 100, true),
		rota,
		negativa,
		tipoRaro,
	}
	r := finance.Summarize(entradas)

	assert.True(t, r.GastosTotales.Equal(decimal.NewFromInt(100)),
		"solo el movimiento válido debe sumar, fue %s", r.GastosTotales)
	require.Len(t, r.Omitidas, 3)
	ids := []string{r.Omitidas[0].EntradaID, r.Omitidas[1].EntradaID, r.Omitidas[2].EntradaID}
	assert.ElementsMatch(t, []string{"m2", "m3", "m4"}, ids)
	for _, o := range r.Omitidas {
		assert.NotEmpty(t, o.Motivo)
	}
}

// Los movimientos inactivos (borrado lógico) se excluyen sin advertencia.
func TestSummarize_InactivosNoSuman(t *testing.T) {
	borrada := entrada("m2", entity.KindGasto, "a", 999, true)
	borrada.Activo = false

	r := finance.Summarize([]entity.LedgerEntry{
		entrada("m1", entity.KindGasto, "a", 100, true),
		borrada,
	})
	assert.True(t, r.GastosTotales.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, r.Omitidas)
}

// Idempotencia: dos corridas sobre la misma entrada dan el mismo resultado.
func TestSummarize_Idempotente(t *testing.T) {
	entradas := escenarioBase()
	r1 := finance.Summarize(entradas)
	r2 := finance.Summarize(entradas)

	assert.True(t, r1.UtilidadReal.Equal(r2.UtilidadReal))
	assert.True(t, r1.MargenRealPct.Equal(r2.MargenRealPct))
	assert.Equal(t, len(r1.GastosPorCategoria), len(r2.GastosPorCategoria))
	for clave, d := range r1.GastosPorCategoria {
		assert.True(t, d.Pagado.Equal(r2.GastosPorCategoria[clave].Pagado))
		assert.True(t, d.Pendiente.Equal(r2.GastosPorCategoria[clave].Pendiente))
	}
}

// Variación = provisión − gasto por categoría (positiva: presupuesto libre).
func TestSummarize_VariacionPorCategoria(t *testing.T) {
	r := finance.Summarize(escenarioBase())
	v := r.VariacionPorCategoria()

	assert.True(t, v["sp"].Equal(decimal.NewFromInt(400)), "sp: 1000 provisión - 600 gasto")
	assert.True(t, v["mat"].Equal(decimal.NewFromInt(-400)), "mat: sin provisión, 400 gasto")
}

func TestSummarize_ClavesGastoOrdenadas(t *testing.T) {
	r := finance.Summarize(escenarioBase())
	assert.Equal(t, []string{"mat", "sp"}, r.ClavesGasto())
}
