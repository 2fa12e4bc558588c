package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eventika/eventos-api/internal/application/dto"
	appfinance "github.com/eventika/eventos-api/internal/application/finance"
	"github.com/eventika/eventos-api/internal/domain"
)

// FinanceHandler expone el resumen financiero de un evento y su estado de
// cuenta en PDF (protegido).
type FinanceHandler struct {
	summaryUC *appfinance.SummaryUseCase
	pdfUC     *appfinance.PDFUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(summaryUC *appfinance.SummaryUseCase, pdfUC *appfinance.PDFUseCase) *FinanceHandler {
	return &FinanceHandler{summaryUC: summaryUC, pdfUC: pdfUC}
}

// Summary godoc
// @Summary      Resumen financiero del evento
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.FinancialSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id}/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id del evento es requerido"})
	}
	out, err := h.summaryUC.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Estado de cuenta del evento (PDF)
// @Tags         finance
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id}/summary/pdf [get]
func (h *FinanceHandler) SummaryPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id del evento es requerido"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadStatementPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
