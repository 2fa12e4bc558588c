package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eventika/eventos-api/internal/application/dto"
	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/entity"
	"github.com/eventika/eventos-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create da de alta un cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Email:     in.Email,
		Telefono:  in.Telefono,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(ctx context.Context, limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Telefono:  c.Telefono,
		CreatedAt: c.CreatedAt,
	}
}
