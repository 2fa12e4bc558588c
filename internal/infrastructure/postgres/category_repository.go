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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para el catálogo de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría. La clave es única.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO evt_categorias (id, nombre, clave, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Nombre, category.Clave, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id, nombre, clave, created_at, updated_at FROM evt_categorias WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Nombre, &c.Clave, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// GetByClave obtiene una categoría por su clave normalizada.
func (r *CategoryRepo) GetByClave(ctx context.Context, clave string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id, nombre, clave, created_at, updated_at FROM evt_categorias WHERE clave = $1`,
		clave,
	).Scan(&c.ID, &c.Nombre, &c.Clave, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria por clave: %w", err)
	}
	return &c, nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, nombre, clave, created_at, updated_at FROM evt_categorias ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var categorias []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Clave, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		categorias = append(categorias, &c)
	}
	return categorias, rows.Err()
}

// UpdateNombre renombra la categoría; la clave es inmutable una vez creada.
func (r *CategoryRepo) UpdateNombre(ctx context.Context, id, nombre string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE evt_categorias SET nombre = $2, updated_at = now() WHERE id = $1`,
		id, nombre,
	)
	if err != nil {
		return fmt.Errorf("update nombre categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
