// Package finance contiene los casos de uso del resumen financiero de un
// evento y su exportación como estado de cuenta en PDF.
package finance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eventika/eventos-api/internal/application/dto"
	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
	domfinance "github.com/eventika/eventos-api/internal/domain/finance"
	"github.com/eventika/eventos-api/internal/domain/repository"
	"github.com/eventika/eventos-api/pkg/logger"
)

// SummaryUseCase calcula el resumen financiero de un evento.
//
// Siempre devuelve un resultado best-effort: los movimientos malformados se
// excluyen y se reportan en Omitidas (y en el log), nunca tumban el resumen.
type SummaryUseCase struct {
	eventRepo  repository.EventRepository
	ledgerRepo repository.LedgerEntryRepository
	log        *logger.Logger
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(eventRepo repository.EventRepository, ledgerRepo repository.LedgerEntryRepository, log *logger.Logger) *SummaryUseCase {
	return &SummaryUseCase{eventRepo: eventRepo, ledgerRepo: ledgerRepo, log: log}
}

// Get computa el resumen del evento indicado.
// Retorna domain.ErrNotFound si el evento no existe o está inactivo.
func (uc *SummaryUseCase) Get(ctx context.Context, eventoID string) (*dto.FinancialSummaryResponse, error) {
	event, resumen, err := uc.resolve(ctx, eventoID)
	if err != nil {
		return nil, err
	}
	return toSummaryResponse(event, resumen), nil
}

// resolve carga el evento y corre el agregador sobre sus movimientos activos.
func (uc *SummaryUseCase) resolve(ctx context.Context, eventoID string) (*entity.Event, domfinance.Resumen, error) {
	event, err := uc.eventRepo.GetByID(ctx, eventoID)
	if err != nil {
		return nil, domfinance.Resumen{}, fmt.Errorf("resumen: obtener evento: %w", err)
	}
	if event == nil || !event.Activo {
		return nil, domfinance.Resumen{}, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListActiveByEvent(ctx, eventoID)
	if err != nil {
		return nil, domfinance.Resumen{}, fmt.Errorf("resumen: listar movimientos: %w", err)
	}
	resumen := domfinance.Summarize(entries)
	for _, o := range resumen.Omitidas {
		uc.log.Warn().
			Str("evento_id", eventoID).
			Str("entrada_id", o.EntradaID).
			Str("motivo", o.Motivo).
			Msg("movimiento excluido del resumen")
	}
	return event, resumen, nil
}

func toSummaryResponse(event *entity.Event, r domfinance.Resumen) *dto.FinancialSummaryResponse {
	out := &dto.FinancialSummaryResponse{
		EventoID:           event.ID,
		Codigo:             event.Codigo,
		IngresosTotales:    fixed(r.IngresosTotales),
		IngresosCobrados:   fixed(r.IngresosCobrados),
		IngresosPendientes: fixed(r.IngresosPendientes),
		GastosTotales:      fixed(r.GastosTotales),
		GastosPagados:      fixed(r.GastosPagados),
		GastosPendientes:   fixed(r.GastosPendientes),
		ProvisionesTotal:   fixed(r.ProvisionesTotal),
		UtilidadReal:       fixed(r.UtilidadReal),
		MargenRealPct:      fixed(r.MargenRealPct),

		GastosPorCategoria:      make(map[string]dto.DesgloseGastoDTO, len(r.GastosPorCategoria)),
		IngresosPorCategoria:    make(map[string]dto.DesgloseIngresoDTO, len(r.IngresosPorCategoria)),
		ProvisionesPorCategoria: make(map[string]string, len(r.ProvisionesPorCategoria)),
		VariacionPorCategoria:   make(map[string]string),
	}
	for clave, d := range r.GastosPorCategoria {
		out.GastosPorCategoria[clave] = dto.DesgloseGastoDTO{Pagado: fixed(d.Pagado), Pendiente: fixed(d.Pendiente)}
	}
	for clave, d := range r.IngresosPorCategoria {
		out.IngresosPorCategoria[clave] = dto.DesgloseIngresoDTO{Cobrado: fixed(d.Cobrado), Pendiente: fixed(d.Pendiente)}
	}
	for clave, p := range r.ProvisionesPorCategoria {
		out.ProvisionesPorCategoria[clave] = fixed(p)
	}
	for clave, v := range r.VariacionPorCategoria() {
		out.VariacionPorCategoria[clave] = fixed(v)
	}
	for _, o := range r.Omitidas {
		out.Omitidas = append(out.Omitidas, dto.OmitidaDTO{EntradaID: o.EntradaID, Motivo: o.Motivo})
	}
	return out
}

func fixed(d decimal.Decimal) string { return d.StringFixed(2) }
