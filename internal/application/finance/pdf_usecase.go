package finance

import (
	"context"
	"fmt"

	"github.com/eventika/eventos-api/internal/domain"
	"github.com/eventika/eventos-api/internal/domain/repository"
)

// PDFUseCase genera el estado de cuenta de un evento en PDF: resumen
// financiero con desglose por categoría, listo para compartir con el cliente.
type PDFUseCase struct {
	summary      *SummaryUseCase
	clientRepo   repository.ClientRepository
	categoryRepo repository.CategoryRepository
	generator    StatementPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	summary *SummaryUseCase,
	clientRepo repository.ClientRepository,
	categoryRepo repository.CategoryRepository,
	generator StatementPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		summary:      summary,
		clientRepo:   clientRepo,
		categoryRepo: categoryRepo,
		generator:    generator,
	}
}

// DownloadStatementPDF arma el estado de cuenta del evento.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el evento no existe o está inactivo.
func (uc *PDFUseCase) DownloadStatementPDF(ctx context.Context, eventoID string) (pdfBytes []byte, filename string, err error) {
	event, resumen, err := uc.summary.resolve(ctx, eventoID)
	if err != nil {
		return nil, "", err
	}

	client, err := uc.clientRepo.GetByID(ctx, event.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if client == nil {
		return nil, "", domain.ErrNotFound
	}

	// Nombres legibles de categoría para el desglose del PDF.
	cats, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: listar categorías: %w", err)
	}
	nombres := make(map[string]string, len(cats))
	for _, c := range cats {
		nombres[c.Clave] = c.Nombre
	}

	bytes, err := uc.generator.GenerateStatementPDF(ctx, event, client, nombres, resumen)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar estado de cuenta: %w", err)
	}
	return bytes, fmt.Sprintf("estado-cuenta-%s.pdf", event.Codigo), nil
}
