package repository

import (
	"context"

	"github.com/eventika/eventos-api/internal/domain/entity"
)

// EventRepository define el puerto de persistencia para Event (DIP).
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Event, error)
	List(ctx context.Context, clienteID string, limit, offset int) ([]*entity.Event, error)
	// NextSequence devuelve el siguiente consecutivo del año para armar el código EVT-<año>-<seq>.
	NextSequence(ctx context.Context, year int) (int64, error)
	// UpdateState cambia el estado del evento con control optimista: la fila solo
	// se actualiza si version coincide. Devuelve domain.ErrConcurrentModification
	// si la versión leída ya no es la persistida.
	UpdateState(ctx context.Context, id, estadoID string, version int64) error
	// Deactivate marca el evento como inactivo. Nunca hay borrado físico; la
	// cascada a movimientos la orquesta el caso de uso dentro de una transacción.
	Deactivate(ctx context.Context, id string) error
}
