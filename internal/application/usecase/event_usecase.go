package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eventika/eventos-api/internal/application/dto"
	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// La implementación vive en infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		eventRepo repository.EventRepository,
		ledgerRepo repository.LedgerEntryRepository,
	) error) error
}

// EventUseCase casos de uso CRUD para eventos. El estado se maneja vía el
// caso de uso de transiciones; aquí solo alta, consulta y borrado lógico.
type EventUseCase struct {
	eventRepo  repository.EventRepository
	clientRepo repository.ClientRepository
	stateRepo  repository.WorkflowStateRepository
	txRunner   TxRunner
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(eventRepo repository.EventRepository, clientRepo repository.ClientRepository, stateRepo repository.WorkflowStateRepository, txRunner TxRunner) *EventUseCase {
	return &EventUseCase{eventRepo: eventRepo, clientRepo: clientRepo, stateRepo: stateRepo, txRunner: txRunner}
}

// Create crea un evento en el estado inicial (prospecto) con código
// EVT-<año>-<seq> asignado por el sistema.
func (uc *EventUseCase) Create(ctx context.Context, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	if in.Nombre == "" || in.ClienteID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound // cliente no existe
	}
	inicial, err := uc.stateRepo.GetByClave(ctx, entity.StateProspecto)
	if err != nil {
		return nil, err
	}
	if inicial == nil {
		return nil, fmt.Errorf("catálogo de estados sin sembrar: falta %q", entity.StateProspecto)
	}

	now := time.Now()
	year := now.Year()
	if !in.Fecha.IsZero() {
		year = in.Fecha.Year()
	}
	seq, err := uc.eventRepo.NextSequence(ctx, year)
	if err != nil {
		return nil, err
	}
	event := &entity.Event{
		ID:        uuid.New().String(),
		Codigo:    entity.EventCode(year, seq),
		Nombre:    in.Nombre,
		ClienteID: in.ClienteID,
		EstadoID:  inicial.ID,
		Activo:    true,
		Version:   1,
		Fecha:     in.Fecha,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	resp := toEventResponse(event)
	resp.EstadoClave = inicial.Clave
	return resp, nil
}

// GetByID obtiene un evento por ID.
func (uc *EventUseCase) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	return toEventResponse(event), nil
}

// List lista eventos con paginación, opcionalmente filtrados por cliente.
func (uc *EventUseCase) List(ctx context.Context, clienteID string, limit, offset int) (*dto.EventListResponse, error) {
	list, err := uc.eventRepo.List(ctx, clienteID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEventResponse(e))
	}
	return &dto.EventListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Deactivate borra lógicamente un evento y cascadea a sus movimientos en una
// sola transacción. No hay borrado físico: todo queda para auditoría.
func (uc *EventUseCase) Deactivate(ctx context.Context, id string) error {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		eventRepo repository.EventRepository,
		ledgerRepo repository.LedgerEntryRepository,
	) error {
		if err := eventRepo.Deactivate(ctx, id); err != nil {
			return err
		}
		return ledgerRepo.SoftDeleteByEvent(ctx, id)
	})
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	if e == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:        e.ID,
		Codigo:    e.Codigo,
		Nombre:    e.Nombre,
		ClienteID: e.ClienteID,
		EstadoID:  e.EstadoID,
		Activo:    e.Activo,
		Version:   e.Version,
		Fecha:     e.Fecha,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
