package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eventika/eventos-api/internal/application/dto"
	"github.com/eventika/eventos-api/internal/application/usecase"
	"github.com/eventika/eventos-api/internal/domain"
)

// EventHandler maneja las peticiones HTTP para Event (protegido).
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// Create godoc
// @Summary      Crear evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "Datos del evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y cliente_id son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "código de evento en conflicto, reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener evento por ID
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.EventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [get]
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar eventos
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        cliente_id  query  string  false  "Filtrar por cliente"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.EventListResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), c.Query("cliente_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Borrado lógico del evento (cascadea a sus movimientos)
// @Tags         events
// @Security     Bearer
// @Param        id  path  string  true  "ID del evento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Deactivate(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
