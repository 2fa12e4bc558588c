package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL (usable con pool o tx).
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador de persistencia para eventos. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Create persiste un nuevo evento. La versión inicial la fija el caso de uso.
func (r *EventRepo) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO eventos (id, codigo, nombre, cliente_id, estado_id, activo, version, fecha, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.Codigo, event.Nombre, event.ClienteID, event.EstadoID,
		event.Activo, event.Version, event.Fecha, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert evento: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID (incluye inactivos; el caso de uso decide).
func (r *EventRepo) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	query := `
		SELECT id, codigo, nombre, cliente_id, estado_id, activo, version, fecha, created_at, updated_at
		FROM eventos WHERE id = $1`
	var e entity.Event
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Codigo, &e.Nombre, &e.ClienteID, &e.EstadoID,
		&e.Activo, &e.Version, &e.Fecha, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evento: %w", err)
	}
	return &e, nil
}

// GetByCodigo obtiene un evento por su código legible.
func (r *EventRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Event, error) {
	query := `
		SELECT id, codigo, nombre, cliente_id, estado_id, activo, version, fecha, created_at, updated_at
		FROM eventos WHERE codigo = $1`
	var e entity.Event
	err := r.q.QueryRow(ctx, query, codigo).Scan(
		&e.ID, &e.Codigo, &e.Nombre, &e.ClienteID, &e.EstadoID,
		&e.Activo, &e.Version, &e.Fecha, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evento por codigo: %w", err)
	}
	return &e, nil
}

// List lista eventos activos con paginación; clienteID vacío lista todos.
func (r *EventRepo) List(ctx context.Context, clienteID string, limit, offset int) ([]*entity.Event, error) {
	query := `
		SELECT id, codigo, nombre, cliente_id, estado_id, activo, version, fecha, created_at, updated_at
		FROM eventos
		WHERE activo = true AND ($1::text IS NULL OR cliente_id = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, nullIfEmpty(clienteID), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	defer rows.Close()

	var eventos []*entity.Event
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(
			&e.ID, &e.Codigo, &e.Nombre, &e.ClienteID, &e.EstadoID,
			&e.Activo, &e.Version, &e.Fecha, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan evento: %w", err)
		}
		eventos = append(eventos, &e)
	}
	return eventos, rows.Err()
}

// NextSequence devuelve el siguiente consecutivo del año para armar el código.
// Cuenta sobre el prefijo del año; los códigos son únicos por constraint, así
// que una colisión por carrera la detecta Create como ErrDuplicate.
func (r *EventRepo) NextSequence(ctx context.Context, year int) (int64, error) {
	var seq int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) + 1 FROM eventos WHERE codigo LIKE $1`,
		fmt.Sprintf("EVT-%d-%%", year),
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// UpdateState cambia el estado con control optimista: la fila solo se toca si
// la versión persistida coincide con la leída por el caller.
func (r *EventRepo) UpdateState(ctx context.Context, id, estadoID string, version int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE eventos SET estado_id = $2, version = version + 1, updated_at = now()
		 WHERE id = $1 AND version = $3 AND activo = true`,
		id, estadoID, version,
	)
	if err != nil {
		return fmt.Errorf("update estado evento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

// Deactivate marca el evento como inactivo (borrado lógico).
func (r *EventRepo) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE eventos SET activo = false, updated_at = now() WHERE id = $1 AND activo = true`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deactivate evento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
