package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eventika/eventos-api/internal/application/dto"
	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/internal/domain/repository"
)

// LedgerUseCase casos de uso de movimientos financieros. Los montos son
// inmutables después del alta: solo liquidar y borrado lógico.
type LedgerUseCase struct {
	ledgerRepo   repository.LedgerEntryRepository
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(ledgerRepo repository.LedgerEntryRepository, eventRepo repository.EventRepository, categoryRepo repository.CategoryRepository) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo, eventRepo: eventRepo, categoryRepo: categoryRepo}
}

// Create registra un movimiento de un evento. Impuesto y total se calculan
// aquí; el invariante total = subtotal + impuesto se valida antes de persistir.
func (uc *LedgerUseCase) Create(ctx context.Context, eventoID string, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	event, err := uc.eventRepo.GetByID(ctx, eventoID)
	if err != nil {
		return nil, err
	}
	if event == nil || !event.Activo {
		return nil, domain.ErrNotFound
	}
	if in.CategoriaID != "" {
		cat, err := uc.categoryRepo.GetByID(ctx, in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound // categoría no existe
		}
	}
	if in.TasaIVA.IsNegative() || in.TasaIVA.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}

	entry := entity.NewLedgerEntry(eventoID, in.CategoriaID, in.Tipo, in.Concepto, in.Subtotal, in.TasaIVA)
	entry.ID = uuid.New().String()
	entry.Devolucion = in.Devolucion
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if err := entry.Validate(); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.ledgerRepo.Save(ctx, &entry); err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// ListByEvent lista los movimientos activos de un evento.
func (uc *LedgerUseCase) ListByEvent(ctx context.Context, eventoID string) (*dto.EntryListResponse, error) {
	event, err := uc.eventRepo.GetByID(ctx, eventoID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListActiveByEvent(ctx, eventoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, *toEntryResponse(e))
	}
	return &dto.EntryListResponse{Items: items}, nil
}

// Settle alterna el flag pagado (gasto) o cobrado (ingreso).
func (uc *LedgerUseCase) Settle(ctx context.Context, entryID string, liquidado bool) (*dto.EntryResponse, error) {
	entry, err := uc.ledgerRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil || !entry.Activo {
		return nil, domain.ErrNotFound
	}
	// Liquidar una provisión no significa nada: no es pagable ni cobrable.
	if entry.Tipo == entity.KindProvision {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.ledgerRepo.SetLiquidado(ctx, entryID, liquidado); err != nil {
		return nil, err
	}
	entry.Liquidado = liquidado
	return toEntryResponse(*entry), nil
}

// SoftDelete desactiva un movimiento; se conserva para auditoría.
func (uc *LedgerUseCase) SoftDelete(ctx context.Context, entryID string) error {
	entry, err := uc.ledgerRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil || !entry.Activo {
		return domain.ErrNotFound
	}
	return uc.ledgerRepo.SoftDelete(ctx, entryID)
}

func toEntryResponse(e entity.LedgerEntry) *dto.EntryResponse {
	return &dto.EntryResponse{
		ID:          e.ID,
		EventoID:    e.EventoID,
		CategoriaID: e.CategoriaID,
		Tipo:        e.Tipo,
		Concepto:    e.Concepto,
		Subtotal:    e.Subtotal,
		Impuesto:    e.Impuesto,
		Total:       e.Total,
		Liquidado:   e.Liquidado,
		Devolucion:  e.Devolucion,
		Activo:      e.Activo,
		CreatedAt:   e.CreatedAt,
	}
}
