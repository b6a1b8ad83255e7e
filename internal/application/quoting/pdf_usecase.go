package quoting

import (
	"context"
	"fmt"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// PDFUseCase genera el documento PDF de una cotización (resumen para el
// employer: empleados cotizados, líneas de beneficio y prima total).
type PDFUseCase struct {
	quoteRepo    repository.QuoteRepository
	employerRepo repository.EmployerRepository
	employeeRepo repository.EmployeeRepository
	generator    QuotePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	quoteRepo repository.QuoteRepository,
	employerRepo repository.EmployerRepository,
	employeeRepo repository.EmployeeRepository,
	generator QuotePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		quoteRepo:    quoteRepo,
		employerRepo: employerRepo,
		employeeRepo: employeeRepo,
		generator:    generator,
	}
}

// DownloadQuotePDF carga la cotización con todo su contexto y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la cotización no existe.
func (uc *PDFUseCase) DownloadQuotePDF(ctx context.Context, quoteID string) (pdfBytes []byte, filename string, err error) {
	quote, err := uc.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if quote == nil {
		return nil, "", domain.ErrNotFound
	}

	employer, err := uc.employerRepo.GetByID(ctx, quote.EmployerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener employer: %w", err)
	}
	if employer == nil {
		return nil, "", domain.ErrNotFound
	}

	employees, err := uc.employeeRepo.ListByEmployer(ctx, quote.EmployerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empleados: %w", err)
	}
	lines, err := uc.quoteRepo.GetLinesByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateQuotePDF(ctx, quote, employer, employees, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("cotizacion_%s.pdf", quote.ID)
	return pdfBytes, filename, nil
}
