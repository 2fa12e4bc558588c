package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eventika/eventos-api/internal/application/dto"
	"github.com/eventika/eventos-api/internal/application/usecase"
	"github.com/eventika/eventos-api/internal/domain"
)

// LedgerHandler maneja las peticiones HTTP para los movimientos financieros (protegido).
type LedgerHandler struct {
	uc *usecase.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento (provisión, gasto o ingreso)
// @Tags         entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento"
// @Param        body  body  dto.CreateEntryRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/events/{id}/entries [post]
func (h *LedgerHandler) Create(c *fiber.Ctx) error {
	eventoID := c.Params("id")
	if eventoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id del evento es requerido"})
	}
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), eventoID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento o categoría no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movimiento inválido: revise tipo, montos y tasa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByEvent godoc
// @Summary      Listar movimientos activos de un evento
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.EntryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id}/entries [get]
func (h *LedgerHandler) ListByEvent(c *fiber.Ctx) error {
	eventoID := c.Params("id")
	if eventoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id del evento es requerido"})
	}
	out, err := h.uc.ListByEvent(c.Context(), eventoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Settle godoc
// @Summary      Marcar movimiento como pagado/cobrado (o revertirlo)
// @Tags         entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.SettleEntryRequest  true  "Nuevo estado de liquidación"
// @Success      200   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entries/{id}/settle [patch]
func (h *LedgerHandler) Settle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SettleEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Settle(c.Context(), id, in.Liquidado)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "una provisión no se liquida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SoftDelete godoc
// @Summary      Borrado lógico de un movimiento
// @Tags         entries
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [delete]
func (h *LedgerHandler) SoftDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.SoftDelete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
