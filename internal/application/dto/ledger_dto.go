package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEntryRequest alta de un movimiento (provisión, gasto o ingreso).
// Impuesto y total se calculan del subtotal y la tasa; el caller no los manda.
type CreateEntryRequest struct {
	CategoriaID string          `json:"categoria_id"`
	Tipo        string          `json:"tipo"` // provision | gasto | ingreso
	Concepto    string          `json:"concepto"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TasaIVA     decimal.Decimal `json:"tasa_iva"` // porcentaje, ej: 16
	Devolucion  bool            `json:"devolucion"`
}

// SettleEntryRequest alterna el flag pagado/cobrado de un movimiento.
type SettleEntryRequest struct {
	Liquidado bool `json:"liquidado"`
}

// EntryResponse representación de un movimiento.
type EntryResponse struct {
	ID          string          `json:"id"`
	EventoID    string          `json:"evento_id"`
	CategoriaID string          `json:"categoria_id,omitempty"`
	Tipo        string          `json:"tipo"`
	Concepto    string          `json:"concepto"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Impuesto    decimal.Decimal `json:"impuesto"`
	Total       decimal.Decimal `json:"total"`
	Liquidado   bool            `json:"liquidado"`
	Devolucion  bool            `json:"devolucion"`
	Activo      bool            `json:"activo"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EntryListResponse listado de movimientos de un evento.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
}
