package repository

import (
	"context"

	"github.com/eventika/eventos-api/internal/domain/entity"
)

// LedgerEntryRepository define el puerto de persistencia para los movimientos
// financieros de un evento.
type LedgerEntryRepository interface {
	Save(ctx context.Context, entry *entity.LedgerEntry) error
	GetByID(ctx context.Context, id string) (*entity.LedgerEntry, error)
	// ListActiveByEvent devuelve los movimientos activos de un evento en orden
	// de creación. Es la entrada del agregador financiero.
	ListActiveByEvent(ctx context.Context, eventoID string) ([]entity.LedgerEntry, error)
	// SetLiquidado alterna el flag pagado/cobrado. Única mutación de negocio
	// permitida sobre un movimiento existente.
	SetLiquidado(ctx context.Context, id string, liquidado bool) error
	// SoftDelete desactiva el movimiento; se conserva para auditoría.
	SoftDelete(ctx context.Context, id string) error
	// SoftDeleteByEvent desactiva todos los movimientos de un evento (cascada
	// del borrado lógico del evento).
	SoftDeleteByEvent(ctx context.Context, eventoID string) error
}
