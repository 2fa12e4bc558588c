package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Errores de validación por movimiento. El agregador los reporta como
// advertencias por entrada en lugar de fallar el resumen completo.
var (
	ErrTotalMismatch  = errors.New("total no coincide con subtotal + impuesto")
	ErrNegativeAmount = errors.New("monto negativo en movimiento que no es devolución")
)

// Tipos de movimiento del libro de un evento.
const (
	KindProvision = "provision" // presupuesto reservado por categoría
	KindGasto     = "gasto"     // egreso real (liquidado = pagado)
	KindIngreso   = "ingreso"   // cobro al cliente (liquidado = cobrado)
)

// Tolerancia de redondeo para la igualdad total = subtotal + impuesto.
var RoundingTolerance = decimal.NewFromFloat(0.01)

// LedgerEntry representa un movimiento financiero de un evento: provisión,
// gasto o ingreso. Los montos son inmutables después de crearse; solo se
// permite alternar Liquidado o desactivar (borrado lógico). Un movimiento
// nunca se reasigna a otro evento.
type LedgerEntry struct {
	ID          string
	EventoID    string
	CategoriaID string // vacío permitido (se agrupa bajo sin_categoria)
	// CategoriaClave es la clave legible de la categoría; la puebla el
	// repositorio con un join al catálogo. Es la llave de los desgloses.
	CategoriaClave string
	Tipo           string // provision | gasto | ingreso
	Concepto       string
	Subtotal       decimal.Decimal
	Impuesto       decimal.Decimal // round(subtotal × tasa/100, 2)
	Total          decimal.Decimal // subtotal + impuesto
	Liquidado      bool            // pagado (gasto) o cobrado (ingreso)
	Devolucion     bool            // permite montos negativos (reverso)
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewLedgerEntry construye un movimiento calculando impuesto y total desde el
// subtotal y la tasa porcentual (ej: 16 para IVA 16%).
func NewLedgerEntry(eventoID, categoriaID, tipo, concepto string, subtotal, tasa decimal.Decimal) LedgerEntry {
	impuesto := subtotal.Mul(tasa).Div(decimal.NewFromInt(100)).Round(2)
	return LedgerEntry{
		EventoID:    eventoID,
		CategoriaID: categoriaID,
		Tipo:        tipo,
		Concepto:    concepto,
		Subtotal:    subtotal,
		Impuesto:    impuesto,
		Total:       subtotal.Add(impuesto),
		Activo:      true,
	}
}

// Validate verifica los invariantes del movimiento:
//   - tipo conocido
//   - total = subtotal + impuesto (dentro de la tolerancia de redondeo)
//   - montos no negativos, salvo que Devolucion esté marcado
func (e LedgerEntry) Validate() error {
	switch e.Tipo {
	case KindProvision, KindGasto, KindIngreso:
	default:
		return fmt.Errorf("tipo de movimiento desconocido: %q", e.Tipo)
	}
	diff := e.Total.Sub(e.Subtotal.Add(e.Impuesto)).Abs()
	if diff.GreaterThan(RoundingTolerance) {
		return ErrTotalMismatch
	}
	if !e.Devolucion && (e.Subtotal.IsNegative() || e.Impuesto.IsNegative() || e.Total.IsNegative()) {
		return ErrNegativeAmount
	}
	return nil
}
