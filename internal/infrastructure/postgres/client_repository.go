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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clientes (id, nombre, email, telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Nombre, nullIfEmpty(client.Email), nullIfEmpty(client.Telefono),
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, nombre, COALESCE(email, ''), COALESCE(telefono, ''), created_at, updated_at
		FROM clientes WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Nombre, &c.Email, &c.Telefono, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes con paginación.
func (r *ClientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, nombre, COALESCE(email, ''), COALESCE(telefono, ''), created_at, updated_at
		FROM clientes ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var clientes []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Email, &c.Telefono, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		clientes = append(clientes, &c)
	}
	return clientes, rows.Err()
}
