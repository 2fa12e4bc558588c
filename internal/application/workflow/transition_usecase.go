// Package workflow contiene el caso de uso de transiciones de estado de un
// evento: validación contra la máquina de estados, evidencia financiera para
// estados de cierre, control optimista de concurrencia e historial inmutable.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eventika/eventos-api/internal/application/dto"
	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/internal/domain/finance"
	"github.com/eventika/eventos-api/internal/domain/repository"
	domworkflow "github.com/eventika/eventos-api/internal/domain/workflow"
	"github.com/eventika/eventos-api/pkg/logger"
)

// TransitionUseCase aplica transiciones de estado sobre eventos.
//
// Las transiciones de un mismo evento se serializan con concurrencia
// optimista: el UPDATE compara la versión leída; si otra operación ganó,
// se retorna domain.ErrConcurrentModification y el caller reintenta tras
// releer el estado actual.
type TransitionUseCase struct {
	eventRepo      repository.EventRepository
	stateRepo      repository.WorkflowStateRepository
	ledgerRepo     repository.LedgerEntryRepository
	transitionRepo repository.TransitionRepository
	log            *logger.Logger
}

// NewTransitionUseCase construye el caso de uso.
func NewTransitionUseCase(
	eventRepo repository.EventRepository,
	stateRepo repository.WorkflowStateRepository,
	ledgerRepo repository.LedgerEntryRepository,
	transitionRepo repository.TransitionRepository,
	log *logger.Logger,
) *TransitionUseCase {
	return &TransitionUseCase{
		eventRepo:      eventRepo,
		stateRepo:      stateRepo,
		ledgerRepo:     ledgerRepo,
		transitionRepo: transitionRepo,
		log:            log,
	}
}

// Attempt intenta mover el evento al estado destino.
//
// Errores tipados que surfacea al caller (nunca ambiguos):
//   - domain.ErrNotFound                el evento no existe o está inactivo
//   - domain.ErrUnknownState            destino fuera del catálogo
//   - domain.ErrInvalidTransition       el orden no avanza y no es excepción
//   - domain.ErrValidationFailed        cierre con pendientes distintos de cero
//   - domain.ErrConcurrentModification  versión obsoleta, reintentar
func (uc *TransitionUseCase) Attempt(ctx context.Context, eventoID, estadoDestinoID, actor string) (*dto.TransitionResponse, error) {
	event, err := uc.eventRepo.GetByID(ctx, eventoID)
	if err != nil {
		return nil, fmt.Errorf("transición: obtener evento: %w", err)
	}
	if event == nil || !event.Activo {
		return nil, domain.ErrNotFound
	}

	states, err := uc.stateRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("transición: cargar catálogo de estados: %w", err)
	}
	machine := domworkflow.NewMachine(states)

	destino, err := machine.State(estadoDestinoID)
	if err != nil {
		return nil, err
	}

	// Evidencia financiera solo para estados de cierre: se computa del libro
	// del evento, no la manda el caller.
	var evidencia *domworkflow.CierreEvidencia
	if destino.RequiereCierre {
		entries, err := uc.ledgerRepo.ListActiveByEvent(ctx, eventoID)
		if err != nil {
			return nil, fmt.Errorf("transición: listar movimientos: %w", err)
		}
		resumen := finance.Summarize(entries)
		evidencia = &domworkflow.CierreEvidencia{
			GastosPendientes:   resumen.GastosPendientes,
			IngresosPendientes: resumen.IngresosPendientes,
		}
	}

	if err := machine.Validate(event.EstadoID, estadoDestinoID, evidencia); err != nil {
		return nil, err
	}

	if err := uc.eventRepo.UpdateState(ctx, event.ID, estadoDestinoID, event.Version); err != nil {
		return nil, err
	}

	record := &entity.TransitionRecord{
		ID:            uuid.New().String(),
		EventoID:      event.ID,
		EstadoOrigen:  event.EstadoID,
		EstadoDestino: estadoDestinoID,
		Actor:         actor,
		CreatedAt:     time.Now(),
	}
	if evidencia != nil {
		payload, err := json.Marshal(evidencia)
		if err != nil {
			return nil, fmt.Errorf("transición: serializar evidencia: %w", err)
		}
		record.Evidencia = string(payload)
	}
	if err := uc.transitionRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("transición: registrar historial: %w", err)
	}

	uc.log.Info().
		Str("evento_id", event.ID).
		Str("de", event.EstadoID).
		Str("a", estadoDestinoID).
		Str("actor", actor).
		Msg("transición aplicada")

	return &dto.TransitionResponse{
		EventoID:     event.ID,
		EstadoID:     destino.ID,
		EstadoClave:  destino.Clave,
		EstadoNombre: destino.Nombre,
		Version:      event.Version + 1,
	}, nil
}

// History devuelve el historial de transiciones del evento (append-only).
func (uc *TransitionUseCase) History(ctx context.Context, eventoID string) ([]dto.TransitionRecordResponse, error) {
	records, err := uc.transitionRepo.ListByEvent(ctx, eventoID)
	if err != nil {
		return nil, fmt.Errorf("transición: listar historial: %w", err)
	}
	out := make([]dto.TransitionRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.TransitionRecordResponse{
			ID:            r.ID,
			EventoID:      r.EventoID,
			EstadoOrigen:  r.EstadoOrigen,
			EstadoDestino: r.EstadoDestino,
			Actor:         r.Actor,
			Evidencia:     r.Evidencia,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out, nil
}

// States devuelve el catálogo completo de estados ordenado por orden.
func (uc *TransitionUseCase) States(ctx context.Context) ([]dto.WorkflowStateResponse, error) {
	states, err := uc.stateRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("transición: cargar catálogo de estados: %w", err)
	}
	out := make([]dto.WorkflowStateResponse, 0, len(states))
	for _, s := range states {
		out = append(out, dto.WorkflowStateResponse{
			ID:             s.ID,
			Clave:          s.Clave,
			Nombre:         s.Nombre,
			Orden:          s.Orden,
			Color:          s.Color,
			Terminal:       s.Terminal,
			Excepcion:      s.Excepcion,
			RequiereCierre: s.RequiereCierre,
		})
	}
	return out, nil
}
