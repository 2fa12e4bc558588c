// Package workflow implementa la máquina de estados del ciclo de vida de un
// evento. La máquina se construye desde el catálogo de estados (tabla
// evt_estados) y es pura: valida transiciones sin tocar persistencia.
package workflow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
)

// CierreEvidencia es el payload de validación para entrar a un estado con
// RequiereCierre (clase "pagados"): los pendientes deben estar en cero.
type CierreEvidencia struct {
	GastosPendientes   decimal.Decimal `json:"gastos_pendientes"`
	IngresosPendientes decimal.Decimal `json:"ingresos_pendientes"`
}

// Saldada indica si la evidencia acredita cero pendientes.
func (e CierreEvidencia) Saldada() bool {
	return e.GastosPendientes.IsZero() && e.IngresosPendientes.IsZero()
}

// Machine valida transiciones contra un catálogo de estados.
type Machine struct {
	byID map[string]entity.WorkflowState
}

// NewMachine construye la máquina desde el catálogo completo de estados.
func NewMachine(states []entity.WorkflowState) *Machine {
	byID := make(map[string]entity.WorkflowState, len(states))
	for _, s := range states {
		byID[s.ID] = s
	}
	return &Machine{byID: byID}
}

// State devuelve un estado del catálogo por ID.
func (m *Machine) State(id string) (entity.WorkflowState, error) {
	s, ok := m.byID[id]
	if !ok {
		return entity.WorkflowState{}, fmt.Errorf("%w: %q", domain.ErrUnknownState, id)
	}
	return s, nil
}

// Validate decide si la transición fromID → toID es válida.
//
// Reglas:
//   - el destino debe existir en el catálogo (ErrUnknownState)
//   - desde un estado terminal no hay transiciones (ErrInvalidTransition)
//   - avance: destino.Orden > origen.Orden
//   - excepción: un estado con Excepcion=true es alcanzable desde cualquier
//     estado no terminal sin importar el orden
//   - cierre: entrar a un estado con RequiereCierre exige evidencia con
//     pendientes en cero (ErrValidationFailed)
//
// evidencia puede ser nil salvo cuando el destino requiere cierre.
func (m *Machine) Validate(fromID, toID string, evidencia *CierreEvidencia) error {
	from, err := m.State(fromID)
	if err != nil {
		return err
	}
	to, err := m.State(toID)
	if err != nil {
		return err
	}

	if from.Terminal {
		return fmt.Errorf("%w: %q es terminal", domain.ErrInvalidTransition, from.Clave)
	}
	if to.Orden <= from.Orden && !to.Excepcion {
		return fmt.Errorf("%w: %q (orden %d) no avanza desde %q (orden %d)",
			domain.ErrInvalidTransition, to.Clave, to.Orden, from.Clave, from.Orden)
	}
	if to.RequiereCierre {
		if evidencia == nil {
			return fmt.Errorf("%w: %q requiere evidencia de cierre financiero",
				domain.ErrValidationFailed, to.Clave)
		}
		if !evidencia.Saldada() {
			return fmt.Errorf("%w: pendientes distintos de cero (gastos=%s, ingresos=%s)",
				domain.ErrValidationFailed,
				evidencia.GastosPendientes, evidencia.IngresosPendientes)
		}
	}
	return nil
}

// DefaultCatalog devuelve el catálogo inicial de estados que siembra
// cmd/seed_states. Los IDs los asigna la base; aquí solo claves y reglas.
func DefaultCatalog() []entity.WorkflowState {
	return []entity.WorkflowState{
		{Clave: entity.StateProspecto, Nombre: "Prospecto", Orden: 10, Color: "#9e9e9e"},
		{Clave: entity.StateCotizado, Nombre: "Cotizado", Orden: 20, Color: "#90caf9"},
		{Clave: entity.StateApartado, Nombre: "Apartado", Orden: 30, Color: "#64b5f6"},
		{Clave: entity.StateConfirmado, Nombre: "Confirmado", Orden: 40, Color: "#1e88e5"},
		{Clave: entity.StateEnPlaneacion, Nombre: "En planeación", Orden: 50, Color: "#7e57c2"},
		{Clave: entity.StateEnEjecucion, Nombre: "En ejecución", Orden: 60, Color: "#5e35b1"},
		{Clave: entity.StateEjecutado, Nombre: "Ejecutado", Orden: 70, Color: "#43a047"},
		{Clave: entity.StateFacturado, Nombre: "Facturado", Orden: 80, Color: "#fdd835"},
		{Clave: entity.StatePagosPendiente, Nombre: "Pagos pendiente", Orden: 90, Color: "#fb8c00"},
		{Clave: entity.StatePagados, Nombre: "Pagados", Orden: 100, Color: "#2e7d32", Terminal: true, RequiereCierre: true},
		{Clave: entity.StatePagosVencidos, Nombre: "Pagos vencidos", Orden: 900, Color: "#c62828", Terminal: true, Excepcion: true},
		{Clave: entity.StateCancelado, Nombre: "Cancelado", Orden: 990, Color: "#616161", Terminal: true, Excepcion: true},
	}
}
