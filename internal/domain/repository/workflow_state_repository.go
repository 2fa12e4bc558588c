package repository

import (
	"context"

	"github.com/eventika/eventos-api/internal/domain/entity"
)

// WorkflowStateRepository define el puerto de lectura del catálogo de estados.
// El catálogo vive en la base (versionado vía seed/migración), no en código.
type WorkflowStateRepository interface {
	GetAll(ctx context.Context) ([]entity.WorkflowState, error)
	GetByClave(ctx context.Context, clave string) (*entity.WorkflowState, error)
	// Upsert inserta o actualiza un estado por clave (lo usa cmd/seed_states).
	Upsert(ctx context.Context, state *entity.WorkflowState) error
}
