package finance

import (
	"context"

	"github.com/eventika/eventos-api/internal/domain/entity"
	domfinance "github.com/eventika/eventos-api/internal/domain/finance"
)

// StatementPDFGenerator genera el estado de cuenta (PDF) de un evento.
// La implementación vive en infrastructure/pdf (Maroto v2).
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		event *entity.Event,
		client *entity.Client,
		categorias map[string]string, // clave → nombre legible
		resumen domfinance.Resumen,
	) ([]byte, error)
}
