package workflow_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appworkflow "github.com/eventika/eventos-api/internal/application/workflow"
	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
	domworkflow "github.com/eventika/eventos-api/internal/domain/workflow"
	"github.com/eventika/eventos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeEventRepo struct {
	events map[string]*entity.Event
	// staleVersion simula que otra operación ganó la carrera: UpdateState
	// siempre falla con ErrConcurrentModification.
	staleVersion bool
}

func (f *fakeEventRepo) Create(_ context.Context, e *entity.Event) error { f.events[e.ID] = e; return nil }
func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*entity.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}
func (f *fakeEventRepo) GetByCodigo(_ context.Context, _ string) (*entity.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) NextSequence(_ context.Context, _ int) (int64, error) { return 1, nil }
func (f *fakeEventRepo) UpdateState(_ context.Context, id, estadoID string, version int64) error {
	if f.staleVersion {
		return domain.ErrConcurrentModification
	}
	e, ok := f.events[id]
	if !ok || e.Version != version {
		return domain.ErrConcurrentModification
	}
	e.EstadoID = estadoID
	e.Version++
	return nil
}
func (f *fakeEventRepo) Deactivate(_ context.Context, id string) error {
	if e, ok := f.events[id]; ok {
		e.Activo = false
	}
	return nil
}

type fakeStateRepo struct{ states []entity.WorkflowState }

func (f *fakeStateRepo) GetAll(_ context.Context) ([]entity.WorkflowState, error) {
	return f.states, nil
}
func (f *fakeStateRepo) GetByClave(_ context.Context, clave string) (*entity.WorkflowState, error) {
	for _, s := range f.states {
		if s.Clave == clave {
			copia := s
			return &copia, nil
		}
	}
	return nil, nil
}
func (f *fakeStateRepo) Upsert(_ context.Context, _ *entity.WorkflowState) error { return nil }

type fakeLedgerRepo struct{ entries []entity.LedgerEntry }

func (f *fakeLedgerRepo) Save(_ context.Context, _ *entity.LedgerEntry) error { return nil }
func (f *fakeLedgerRepo) GetByID(_ context.Context, _ string) (*entity.LedgerEntry, error) {
	return nil, nil
}
func (f *fakeLedgerRepo) ListActiveByEvent(_ context.Context, _ string) ([]entity.LedgerEntry, error) {
	return f.entries, nil
}
func (f *fakeLedgerRepo) SetLiquidado(_ context.Context, _ string, _ bool) error { return nil }
func (f *fakeLedgerRepo) SoftDelete(_ context.Context, _ string) error           { return nil }
func (f *fakeLedgerRepo) SoftDeleteByEvent(_ context.Context, _ string) error    { return nil }

type fakeTransitionRepo struct{ records []entity.TransitionRecord }

func (f *fakeTransitionRepo) Append(_ context.Context, r *entity.TransitionRecord) error {
	f.records = append(f.records, *r)
	return nil
}
func (f *fakeTransitionRepo) ListByEvent(_ context.Context, _ string) ([]entity.TransitionRecord, error) {
	return f.records, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const eventoID = "evt-1"

func catalogo() []entity.WorkflowState {
	states := domworkflow.DefaultCatalog()
	for i := range states {
		states[i].ID = states[i].Clave
	}
	return states
}

func movimiento(tipo string, total int64, liquidado bool) entity.LedgerEntry {
	return entity.LedgerEntry{
		ID:        "m-" + tipo,
		EventoID:  eventoID,
		Tipo:      tipo,
		Subtotal:  decimal.NewFromInt(total),
		Total:     decimal.NewFromInt(total),
		Liquidado: liquidado,
		Activo:    true,
	}
}

type fixture struct {
	uc     *appworkflow.TransitionUseCase
	events *fakeEventRepo
	hist   *fakeTransitionRepo
	ledger *fakeLedgerRepo
}

func nuevoFixture(t *testing.T, estadoActual string) *fixture {
	t.Helper()
	events := &fakeEventRepo{events: map[string]*entity.Event{
		eventoID: {ID: eventoID, Codigo: "EVT-2024-0001", EstadoID: estadoActual, Activo: true, Version: 3},
	}}
	hist := &fakeTransitionRepo{}
	ledger := &fakeLedgerRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := appworkflow.NewTransitionUseCase(events, &fakeStateRepo{states: catalogo()}, ledger, hist, log)
	return &fixture{uc: uc, events: events, hist: hist, ledger: ledger}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAttempt_AvanceValido(t *testing.T) {
	f := nuevoFixture(t, entity.StateProspecto)

	out, err := f.uc.Attempt(context.Background(), eventoID, entity.StateCotizado, "ana")
	require.NoError(t, err)

	assert.Equal(t, entity.StateCotizado, out.EstadoClave)
	assert.Equal(t, int64(4), out.Version, "la versión debe incrementarse")
	assert.Equal(t, entity.StateCotizado, f.events.events[eventoID].EstadoID)

	require.Len(t, f.hist.records, 1, "toda transición aceptada se registra")
	rec := f.hist.records[0]
	assert.Equal(t, entity.StateProspecto, rec.EstadoOrigen)
	assert.Equal(t, entity.StateCotizado, rec.EstadoDestino)
	assert.Equal(t, "ana", rec.Actor)
	assert.Empty(t, rec.Evidencia, "transición sin cierre no lleva evidencia")
}

func TestAttempt_RetrocesoRechazado(t *testing.T) {
	f := nuevoFixture(t, entity.StateConfirmado)

	_, err := f.uc.Attempt(context.Background(), eventoID, entity.StateProspecto, "ana")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, f.hist.records, "una transición rechazada no deja historial")
	assert.Equal(t, entity.StateConfirmado, f.events.events[eventoID].EstadoID, "el estado no cambia")
}

// Escenario del modelo: prospecto → pagados con gastos_pendientes=400 falla.
func TestAttempt_CierreConPendientesRechazado(t *testing.T) {
	f := nuevoFixture(t, entity.StateProspecto)
	f.ledger.entries = []entity.LedgerEntry{
		movimiento(entity.KindGasto, 600, true),
		movimiento(entity.KindGasto, 400, false), // pendiente
		movimiento(entity.KindIngreso, 2000, true),
	}

	_, err := f.uc.Attempt(context.Background(), eventoID, entity.StatePagados, "ana")
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
	assert.Empty(t, f.hist.records)
}

func TestAttempt_CierreSaldadoPasaConEvidencia(t *testing.T) {
	f := nuevoFixture(t, entity.StatePagosPendiente)
	f.ledger.entries = []entity.LedgerEntry{
		movimiento(entity.KindGasto, 1000, true),
		movimiento(entity.KindIngreso, 2000, true),
	}

	out, err := f.uc.Attempt(context.Background(), eventoID, entity.StatePagados, "ana")
	require.NoError(t, err)
	assert.Equal(t, entity.StatePagados, out.EstadoClave)

	require.Len(t, f.hist.records, 1)
	assert.Contains(t, f.hist.records[0].Evidencia, `"gastos_pendientes"`,
		"la transición de cierre guarda el payload de validación")
}

func TestAttempt_EstadoDesconocido(t *testing.T) {
	f := nuevoFixture(t, entity.StateProspecto)

	_, err := f.uc.Attempt(context.Background(), eventoID, "no_existe", "ana")
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestAttempt_EventoInexistente(t *testing.T) {
	f := nuevoFixture(t, entity.StateProspecto)

	_, err := f.uc.Attempt(context.Background(), "otro", entity.StateCotizado, "ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttempt_EventoInactivo(t *testing.T) {
	f := nuevoFixture(t, entity.StateProspecto)
	f.events.events[eventoID].Activo = false

	_, err := f.uc.Attempt(context.Background(), eventoID, entity.StateCotizado, "ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una versión obsoleta surfacea ErrConcurrentModification para que el caller
// relea y reintente; no se escribe historial.
func TestAttempt_ModificacionConcurrente(t *testing.T) {
	f := nuevoFixture(t, entity.StateProspecto)
	f.events.staleVersion = true

	_, err := f.uc.Attempt(context.Background(), eventoID, entity.StateCotizado, "ana")
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
	assert.Empty(t, f.hist.records)
}

func TestStates_DevuelveCatalogo(t *testing.T) {
	f := nuevoFixture(t, entity.StateProspecto)

	out, err := f.uc.States(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 12)
}
