package workflow_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/internal/domain/workflow"
)

// maquina construye la máquina con el catálogo por defecto usando la clave
// como ID (en producción el ID lo asigna la base).
func maquina(t *testing.T) *workflow.Machine {
	t.Helper()
	states := workflow.DefaultCatalog()
	for i := range states {
		states[i].ID = states[i].Clave
	}
	return workflow.NewMachine(states)
}

func cero() *workflow.CierreEvidencia {
	return &workflow.CierreEvidencia{}
}

func TestValidate_AvanceHaciaAdelante(t *testing.T) {
	m := maquina(t)

	casos := []struct{ de, a string }{
		{entity.StateProspecto, entity.StateCotizado},
		{entity.StateProspecto, entity.StateConfirmado}, // saltar estados intermedios es válido
		{entity.StateFacturado, entity.StatePagosPendiente},
	}
	for _, c := range casos {
		assert.NoError(t, m.Validate(c.de, c.a, nil), "%s → %s debe ser válido", c.de, c.a)
	}
}

func TestValidate_RetrocesoFalla(t *testing.T) {
	m := maquina(t)

	err := m.Validate(entity.StateConfirmado, entity.StateProspecto, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Mismo orden tampoco es avance.
	err = m.Validate(entity.StateCotizado, entity.StateCotizado, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestValidate_ExcepcionDesdeCualquierNoTerminal(t *testing.T) {
	m := maquina(t)

	// pagos_vencidos y cancelado son de excepción: alcanzables desde cualquier
	// estado no terminal sin importar el orden.
	for _, de := range []string{entity.StateProspecto, entity.StateEnEjecucion, entity.StatePagosPendiente} {
		assert.NoError(t, m.Validate(de, entity.StatePagosVencidos, nil), "desde %s", de)
		assert.NoError(t, m.Validate(de, entity.StateCancelado, nil), "desde %s", de)
	}
}

func TestValidate_TerminalNoSale(t *testing.T) {
	m := maquina(t)

	for _, de := range []string{entity.StatePagados, entity.StatePagosVencidos, entity.StateCancelado} {
		err := m.Validate(de, entity.StateCotizado, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "desde %s", de)
		// Ni siquiera hacia otro estado de excepción.
		err = m.Validate(de, entity.StateCancelado, nil)
		if de != entity.StateCancelado {
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "desde %s", de)
		}
	}
}

func TestValidate_EstadoDesconocido(t *testing.T) {
	m := maquina(t)

	err := m.Validate(entity.StateProspecto, "no_existe", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownState)

	err = m.Validate("no_existe", entity.StateCotizado, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

// Entrar a pagados exige evidencia con pendientes en cero.
func TestValidate_CierreRequiereEvidencia(t *testing.T) {
	m := maquina(t)

	// Sin evidencia.
	err := m.Validate(entity.StatePagosPendiente, entity.StatePagados, nil)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	// Con gastos pendientes (ej: 400 del escenario de referencia, desde prospecto).
	err = m.Validate(entity.StateProspecto, entity.StatePagados, &workflow.CierreEvidencia{
		GastosPendientes: decimal.NewFromInt(400),
	})
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	// Con ingresos pendientes.
	err = m.Validate(entity.StatePagosPendiente, entity.StatePagados, &workflow.CierreEvidencia{
		IngresosPendientes: decimal.NewFromInt(1500),
	})
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	// Todo saldado: pasa.
	require.NoError(t, m.Validate(entity.StatePagosPendiente, entity.StatePagados, cero()))
}

func TestState_Desconocido(t *testing.T) {
	m := maquina(t)
	_, err := m.State("zzz")
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestDefaultCatalog_ClavesUnicasYOrdenCreciente(t *testing.T) {
	vistos := map[string]bool{}
	for _, s := range workflow.DefaultCatalog() {
		assert.False(t, vistos[s.Clave], "clave duplicada %s", s.Clave)
		vistos[s.Clave] = true
		assert.Greater(t, s.Orden, 0)
	}
	assert.Len(t, vistos, 12)
}
