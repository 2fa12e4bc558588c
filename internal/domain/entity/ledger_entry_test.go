package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventika/eventos-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestNewLedgerEntry_CalculaImpuestoYTotal(t *testing.T) {
	e := entity.NewLedgerEntry("evt-1", "cat-1", entity.KindGasto, "flores", dec("1000"), dec("16"))

	assert.True(t, e.Impuesto.Equal(dec("160")), "impuesto = subtotal × 16%%, got %s", e.Impuesto)
	assert.True(t, e.Total.Equal(dec("1160")), "total = subtotal + impuesto, got %s", e.Total)
	assert.True(t, e.Activo)
	require.NoError(t, e.Validate())
}

func TestNewLedgerEntry_RedondeaImpuestoADosDecimales(t *testing.T) {
	// 333.33 × 16% = 53.3328 → 53.33
	e := entity.NewLedgerEntry("evt-1", "", entity.KindIngreso, "anticipo", dec("333.33"), dec("16"))

	assert.True(t, e.Impuesto.Equal(dec("53.33")), "got %s", e.Impuesto)
	assert.True(t, e.Total.Equal(dec("386.66")), "got %s", e.Total)
	require.NoError(t, e.Validate(), "el total derivado siempre cumple la igualdad")
}

func TestValidate_TipoDesconocido(t *testing.T) {
	e := entity.NewLedgerEntry("evt-1", "", "anticipo", "x", dec("100"), decimal.Zero)
	assert.Error(t, e.Validate())
}

func TestValidate_TotalNoCuadra(t *testing.T) {
	e := entity.NewLedgerEntry("evt-1", "", entity.KindGasto, "x", dec("100"), dec("16"))
	e.Total = dec("999")
	assert.ErrorIs(t, e.Validate(), entity.ErrTotalMismatch)
}

func TestValidate_ToleranciaDeRedondeo(t *testing.T) {
	e := entity.NewLedgerEntry("evt-1", "", entity.KindGasto, "x", dec("100"), dec("16"))
	e.Total = e.Total.Add(dec("0.01"))
	assert.NoError(t, e.Validate(), "un centavo de diferencia está dentro de la tolerancia")

	e.Total = e.Total.Add(dec("0.01"))
	assert.ErrorIs(t, e.Validate(), entity.ErrTotalMismatch)
}

func TestValidate_MontoNegativoSoloEnDevolucion(t *testing.T) {
	e := entity.NewLedgerEntry("evt-1", "", entity.KindGasto, "reverso", dec("-150"), decimal.Zero)
	assert.ErrorIs(t, e.Validate(), entity.ErrNegativeAmount)

	e.Devolucion = true
	assert.NoError(t, e.Validate(), "marcada como devolución admite montos negativos")
}
