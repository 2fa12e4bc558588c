package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eventika/eventos-api/internal/application/dto"
	appworkflow "github.com/eventika/eventos-api/internal/application/workflow"
	"github.com/eventika/eventos-api/internal/domain"
)

// WorkflowHandler maneja las transiciones de estado de eventos y el catálogo
// de estados (protegido).
type WorkflowHandler struct {
	uc *appworkflow.TransitionUseCase
}

// NewWorkflowHandler construye el handler.
func NewWorkflowHandler(uc *appworkflow.TransitionUseCase) *WorkflowHandler {
	return &WorkflowHandler{uc: uc}
}

// Attempt godoc
// @Summary      Intentar transición de estado del evento
// @Tags         workflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento"
// @Param        body  body  dto.TransitionRequest  true  "Estado destino"
// @Success      200   {object}  dto.TransitionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/events/{id}/transitions [post]
func (h *WorkflowHandler) Attempt(c *fiber.Ctx) error {
	eventoID := c.Params("id")
	if eventoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id del evento es requerido"})
	}
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EstadoDestinoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado_destino_id es requerido"})
	}
	out, err := h.uc.Attempt(c.Context(), eventoID, in.EstadoDestinoID, GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento no encontrado"})
		case errors.Is(err, domain.ErrUnknownState):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_STATE", Message: "estado destino no existe en el catálogo"})
		case errors.Is(err, domain.ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
		case errors.Is(err, domain.ErrValidationFailed):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION_FAILED", Message: err.Error()})
		case errors.Is(err, domain.ErrConcurrentModification):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENT_MODIFICATION", Message: "el evento fue modificado por otro proceso, releer y reintentar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de transiciones del evento
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {array}  dto.TransitionRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id}/transitions [get]
func (h *WorkflowHandler) History(c *fiber.Ctx) error {
	eventoID := c.Params("id")
	if eventoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id del evento es requerido"})
	}
	out, err := h.uc.History(c.Context(), eventoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// States godoc
// @Summary      Catálogo de estados del workflow
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WorkflowStateResponse
// @Router       /api/workflow-states [get]
func (h *WorkflowHandler) States(c *fiber.Ctx) error {
	out, err := h.uc.States(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
