package quoting

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// QuoteTxRunner ejecuta una función dentro de una transacción que incluye los
// repos del flujo de cotización. Todo lo escrito por fn es atómico: si fn
// retorna error la transacción completa se revierte y no queda ninguna fila.
type QuoteTxRunner interface {
	RunQuoting(ctx context.Context, fn func(
		employerRepo repository.EmployerRepository,
		employeeRepo repository.EmployeeRepository,
		quoteRepo repository.QuoteRepository,
	) error) error
}

// QuotePDFGenerator genera el documento PDF de una cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(
		ctx context.Context,
		quote *entity.Quote,
		employer *entity.Employer,
		employees []*entity.Employee,
		lines []*entity.QuoteLine,
	) ([]byte, error)
}
