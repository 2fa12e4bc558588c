package repository

import (
	"context"

	"github.com/eventika/eventos-api/internal/domain/entity"
)

// TransitionRepository define el puerto del historial de transiciones.
// El historial es append-only: solo inserta y lista, nunca actualiza.
type TransitionRepository interface {
	Append(ctx context.Context, record *entity.TransitionRecord) error
	ListByEvent(ctx context.Context, eventoID string) ([]entity.TransitionRecord, error)
}
