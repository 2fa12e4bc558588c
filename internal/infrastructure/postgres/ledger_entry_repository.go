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

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// LedgerEntryRepo implementación del puerto LedgerEntryRepository sobre PostgreSQL (usable con pool o tx).
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository construye el adaptador de persistencia para movimientos. Pasar pool o tx (Querier).
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

// Save persiste un nuevo movimiento. Los montos nunca se actualizan después.
func (r *LedgerEntryRepo) Save(ctx context.Context, entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO evt_movimientos (id, evento_id, categoria_id, tipo, concepto, subtotal, impuesto, total, liquidado, devolucion, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.EventoID, nullIfEmpty(entry.CategoriaID), entry.Tipo, entry.Concepto,
		entry.Subtotal, entry.Impuesto, entry.Total, entry.Liquidado, entry.Devolucion,
		entry.Activo, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID con la clave de su categoría resuelta.
func (r *LedgerEntryRepo) GetByID(ctx context.Context, id string) (*entity.LedgerEntry, error) {
	query := `
		SELECT m.id, m.evento_id, COALESCE(m.categoria_id::text, ''), COALESCE(c.clave, ''),
		       m.tipo, m.concepto, m.subtotal, m.impuesto, m.total, m.liquidado, m.devolucion,
		       m.activo, m.created_at, m.updated_at
		FROM evt_movimientos m
		LEFT JOIN evt_categorias c ON c.id = m.categoria_id
		WHERE m.id = $1`
	var e entity.LedgerEntry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EventoID, &e.CategoriaID, &e.CategoriaClave,
		&e.Tipo, &e.Concepto, &e.Subtotal, &e.Impuesto, &e.Total, &e.Liquidado, &e.Devolucion,
		&e.Activo, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &e, nil
}

// ListActiveByEvent devuelve los movimientos activos de un evento en orden de
// creación, con la clave de categoría resuelta por join (llave del agregador).
func (r *LedgerEntryRepo) ListActiveByEvent(ctx context.Context, eventoID string) ([]entity.LedgerEntry, error) {
	query := `
		SELECT m.id, m.evento_id, COALESCE(m.categoria_id::text, ''), COALESCE(c.clave, ''),
		       m.tipo, m.concepto, m.subtotal, m.impuesto, m.total, m.liquidado, m.devolucion,
		       m.activo, m.created_at, m.updated_at
		FROM evt_movimientos m
		LEFT JOIN evt_categorias c ON c.id = m.categoria_id
		WHERE m.evento_id = $1 AND m.activo = true
		ORDER BY m.created_at, m.id`
	rows, err := r.q.Query(ctx, query, eventoID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var entries []entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(
			&e.ID, &e.EventoID, &e.CategoriaID, &e.CategoriaClave,
			&e.Tipo, &e.Concepto, &e.Subtotal, &e.Impuesto, &e.Total, &e.Liquidado, &e.Devolucion,
			&e.Activo, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SetLiquidado alterna el flag pagado/cobrado de un movimiento activo.
func (r *LedgerEntryRepo) SetLiquidado(ctx context.Context, id string, liquidado bool) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE evt_movimientos SET liquidado = $2, updated_at = now() WHERE id = $1 AND activo = true`,
		id, liquidado,
	)
	if err != nil {
		return fmt.Errorf("set liquidado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete desactiva un movimiento; la fila se conserva para auditoría.
func (r *LedgerEntryRepo) SoftDelete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE evt_movimientos SET activo = false, updated_at = now() WHERE id = $1 AND activo = true`,
		id,
	)
	if err != nil {
		return fmt.Errorf("soft delete movimiento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDeleteByEvent desactiva todos los movimientos de un evento. Cero filas
// afectadas no es error: un evento sin movimientos es válido.
func (r *LedgerEntryRepo) SoftDeleteByEvent(ctx context.Context, eventoID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE evt_movimientos SET activo = false, updated_at = now() WHERE evento_id = $1 AND activo = true`,
		eventoID,
	)
	if err != nil {
		return fmt.Errorf("soft delete movimientos del evento: %w", err)
	}
	return nil
}
