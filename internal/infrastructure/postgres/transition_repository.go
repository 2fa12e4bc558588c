package postgres

import (
	"context"
	"fmt"

	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/internal/domain/repository"
)

var _ repository.TransitionRepository = (*TransitionRepo)(nil)

// TransitionRepo implementación del puerto TransitionRepository sobre PostgreSQL.
// La tabla evt_transiciones es append-only.
type TransitionRepo struct {
	q Querier
}

// NewTransitionRepository construye el adaptador del historial de transiciones.
func NewTransitionRepository(q Querier) *TransitionRepo {
	return &TransitionRepo{q: q}
}

// Append agrega un registro al historial.
func (r *TransitionRepo) Append(ctx context.Context, record *entity.TransitionRecord) error {
	query := `
		INSERT INTO evt_transiciones (id, evento_id, estado_origen, estado_destino, actor, evidencia, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		record.ID, record.EventoID, record.EstadoOrigen, record.EstadoDestino,
		record.Actor, nullIfEmpty(record.Evidencia), record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transicion: %w", err)
	}
	return nil
}

// ListByEvent devuelve el historial de un evento, el más reciente primero.
func (r *TransitionRepo) ListByEvent(ctx context.Context, eventoID string) ([]entity.TransitionRecord, error) {
	query := `
		SELECT id, evento_id, estado_origen, estado_destino, actor, COALESCE(evidencia::text, ''), created_at
		FROM evt_transiciones WHERE evento_id = $1 ORDER BY created_at DESC, id`
	rows, err := r.q.Query(ctx, query, eventoID)
	if err != nil {
		return nil, fmt.Errorf("list transiciones: %w", err)
	}
	defer rows.Close()

	var records []entity.TransitionRecord
	for rows.Next() {
		var t entity.TransitionRecord
		if err := rows.Scan(
			&t.ID, &t.EventoID, &t.EstadoOrigen, &t.EstadoDestino,
			&t.Actor, &t.Evidencia, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transicion: %w", err)
		}
		records = append(records, t)
	}
	return records, rows.Err()
}
