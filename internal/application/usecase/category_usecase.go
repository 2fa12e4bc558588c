package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eventika/eventos-api/internal/application/dto"
	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/internal/domain/repository"
	"github.com/eventika/eventos-api/pkg/clave"
)

// CategoryUseCase casos de uso del catálogo de categorías. Datos de
// referencia: alta y renombrado, nunca borrado mientras estén referenciadas.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create da de alta una categoría. La clave se normaliza del nombre si no
// viene explícita y debe ser única.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	key := in.Clave
	if key == "" {
		key = clave.Normalize(in.Nombre)
	} else {
		key = clave.Normalize(key)
	}
	if key == "" || key == entity.ClaveSinCategoria {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByClave(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Clave:     key,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista el catálogo completo.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Rename cambia el nombre legible; la clave es inmutable porque los
// resúmenes históricos la referencian.
func (uc *CategoryUseCase) Rename(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateNombre(ctx, id, in.Nombre); err != nil {
		return nil, err
	}
	category.Nombre = in.Nombre
	return toCategoryResponse(category), nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Clave:     c.Clave,
		CreatedAt: c.CreatedAt,
	}
}
