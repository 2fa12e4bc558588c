package repository

import (
	"context"

	"github.com/eventika/eventos-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las categorías son datos de referencia: nunca se borran mientras existan
// movimientos que las referencien.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByClave(ctx context.Context, clave string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	UpdateNombre(ctx context.Context, id, nombre string) error
}
