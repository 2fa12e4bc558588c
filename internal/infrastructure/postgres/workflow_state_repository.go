package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/internal/domain/repository"
)

var _ repository.WorkflowStateRepository = (*WorkflowStateRepo)(nil)

// WorkflowStateRepo implementación del puerto WorkflowStateRepository sobre PostgreSQL.
type WorkflowStateRepo struct {
	q Querier
}

// NewWorkflowStateRepository construye el adaptador del catálogo de estados.
func NewWorkflowStateRepository(q Querier) *WorkflowStateRepo {
	return &WorkflowStateRepo{q: q}
}

// GetAll devuelve el catálogo completo ordenado por orden de progresión.
func (r *WorkflowStateRepo) GetAll(ctx context.Context) ([]entity.WorkflowState, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, clave, nombre, orden, color, terminal, excepcion, requiere_cierre, created_at
		FROM evt_estados ORDER BY orden`)
	if err != nil {
		return nil, fmt.Errorf("list estados: %w", err)
	}
	defer rows.Close()

	var estados []entity.WorkflowState
	for rows.Next() {
		var s entity.WorkflowState
		if err := rows.Scan(
			&s.ID, &s.Clave, &s.Nombre, &s.Orden, &s.Color,
			&s.Terminal, &s.Excepcion, &s.RequiereCierre, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan estado: %w", err)
		}
		estados = append(estados, s)
	}
	return estados, rows.Err()
}

// GetByClave obtiene un estado por su clave.
func (r *WorkflowStateRepo) GetByClave(ctx context.Context, clave string) (*entity.WorkflowState, error) {
	var s entity.WorkflowState
	err := r.q.QueryRow(ctx, `
		SELECT id, clave, nombre, orden, color, terminal, excepcion, requiere_cierre, created_at
		FROM evt_estados WHERE clave = $1`,
		clave,
	).Scan(
		&s.ID, &s.Clave, &s.Nombre, &s.Orden, &s.Color,
		&s.Terminal, &s.Excepcion, &s.RequiereCierre, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estado por clave: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza un estado por clave. Idempotente; lo usa el seed.
func (r *WorkflowStateRepo) Upsert(ctx context.Context, state *entity.WorkflowState) error {
	query := `
		INSERT INTO evt_estados (id, clave, nombre, orden, color, terminal, excepcion, requiere_cierre, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (clave) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			orden = EXCLUDED.orden,
			color = EXCLUDED.color,
			terminal = EXCLUDED.terminal,
			excepcion = EXCLUDED.excepcion,
			requiere_cierre = EXCLUDED.requiere_cierre`
	_, err := r.q.Exec(ctx, query,
		state.ID, state.Clave, state.Nombre, state.Orden, state.Color,
		state.Terminal, state.Excepcion, state.RequiereCierre, state.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert estado: %w", err)
	}
	return nil
}
