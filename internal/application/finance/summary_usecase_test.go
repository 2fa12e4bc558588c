package finance_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfinance "github.com/eventika/eventos-api/internal/application/finance"
	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/pkg/logger"
)

type fakeEventRepo struct{ events map[string]*entity.Event }

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
func (f *fakeEventRepo) NextSequence(_ context.Context, _ int) (int64, error)      { return 1, nil }
func (f *fakeEventRepo) UpdateState(_ context.Context, _, _ string, _ int64) error { return nil }
func (f *fakeEventRepo) Deactivate(_ context.Context, _ string) error              { return nil }

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

func mov(id, tipo, clave string, total int64, liquidado bool) entity.LedgerEntry {
	return entity.LedgerEntry{
		ID:             id,
		EventoID:       "evt-1",
		CategoriaClave: clave,
		Tipo:           tipo,
		Subtotal:       decimal.NewFromInt(total),
		Total:          decimal.NewFromInt(total),
		Liquidado:      liquidado,
		Activo:         true,
	}
}

func nuevoSummaryUC(entries []entity.LedgerEntry) *appfinance.SummaryUseCase {
	events := &fakeEventRepo{events: map[string]*entity.Event{
		"evt-1": {ID: "evt-1", Codigo: "EVT-2024-0001", Activo: true, Version: 1},
	}}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return appfinance.NewSummaryUseCase(events, &fakeLedgerRepo{entries: entries}, log)
}

func TestGet_ResumenDelEscenarioBase(t *testing.T) {
	uc := nuevoSummaryUC([]entity.LedgerEntry{
		mov("m1", entity.KindProvision, "sp", 1000, false),
		mov("m2", entity.KindGasto, "sp", 600, true),
		mov("m3", entity.KindGasto, "mat", 400, false),
		mov("m4", entity.KindIngreso, "", 2000, true),
	})

	out, err := uc.Get(context.Background(), "evt-1")
	require.NoError(t, err)

	assert.Equal(t, "EVT-2024-0001", out.Codigo)
	assert.Equal(t, "1000.00", out.GastosTotales)
	assert.Equal(t, "600.00", out.GastosPagados)
	assert.Equal(t, "400.00", out.GastosPendientes)
	assert.Equal(t, "2000.00", out.IngresosCobrados)
	assert.Equal(t, "1400.00", out.UtilidadReal)
	assert.Equal(t, "70.00", out.MargenRealPct)

	// Desgloses por clave de categoría; el ingreso sin categoría cae en el centinela.
	assert.Equal(t, "600.00", out.GastosPorCategoria["sp"].Pagado)
	assert.Equal(t, "400.00", out.GastosPorCategoria["mat"].Pendiente)
	assert.Equal(t, "2000.00", out.IngresosPorCategoria[entity.ClaveSinCategoria].Cobrado)
	assert.Equal(t, "400.00", out.VariacionPorCategoria["sp"])
	assert.Empty(t, out.Omitidas)
}

func TestGet_BestEffortConMalformados(t *testing.T) {
	rota := mov("m2", entity.KindGasto, "a", 100, true)
	rota.Total = decimal.NewFromInt(999)

	uc := nuevoSummaryUC([]entity.LedgerEntry{
		mov("m1", entity.KindGasto, "a", 100, true),
		rota,
	})

	out, err := uc.Get(context.Background(), "evt-1")
	require.NoError(t, err, "un movimiento malformado no tumba el resumen")
	assert.Equal(t, "100.00", out.GastosTotales)
	require.Len(t, out.Omitidas, 1)
	assert.Equal(t, "m2", out.Omitidas[0].EntradaID)
	assert.NotEmpty(t, out.Omitidas[0].Motivo)
}

func TestGet_EventoInexistente(t *testing.T) {
	uc := nuevoSummaryUC(nil)

	_, err := uc.Get(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_EventoInactivo(t *testing.T) {
	events := &fakeEventRepo{events: map[string]*entity.Event{
		"evt-1": {ID: "evt-1", Codigo: "EVT-2024-0001", Activo: false},
	}}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := appfinance.NewSummaryUseCase(events, &fakeLedgerRepo{}, log)

	_, err := uc.Get(context.Background(), "evt-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
