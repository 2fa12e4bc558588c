package entity

import "time"

// WorkflowState es un estado del ciclo de vida de un evento. El catálogo es
// finito, ordenado y versionado en la tabla evt_estados (no es un enum en
// código: agregar estados es una migración de datos, no un release).
//
// Orden define la progresión: un evento solo avanza hacia órdenes mayores.
// Excepcion marca estados alcanzables desde cualquier estado no terminal sin
// importar el orden (ej: pagos_vencidos al vencer un plazo, cancelado).
// RequiereCierre marca estados cuya entrada exige evidencia financiera de
// cero pendientes (clase "pagados").
type WorkflowState struct {
	ID             string
	Clave          string // única, ej: "pagos_pendiente"
	Nombre         string
	Orden          int
	Color          string // hex para la UI, ej: "#2e7d32"
	Terminal       bool
	Excepcion      bool
	RequiereCierre bool
	CreatedAt      time.Time
}

// Claves del catálogo inicial. Se siembran con cmd/seed_states; el código
// solo las usa para sembrar y en tests, nunca para decidir transiciones.
const (
	StateProspecto      = "prospecto"
	StateCotizado       = "cotizado"
	StateApartado       = "apartado"
	StateConfirmado     = "confirmado"
	StateEnPlaneacion   = "en_planeacion"
	StateEnEjecucion    = "en_ejecucion"
	StateEjecutado      = "ejecutado"
	StateFacturado      = "facturado"
	StatePagosPendiente = "pagos_pendiente"
	StatePagados        = "pagados"
	StatePagosVencidos  = "pagos_vencidos"
	StateCancelado      = "cancelado"
)
