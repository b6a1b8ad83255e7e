package repository

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// QuoteRepository define el puerto de persistencia para Quote y sus líneas.
// El orden de escritura lo controla el caso de uso: Employer → Employees →
// Quote → QuoteLines, siempre dentro de la misma transacción.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	CreateLine(ctx context.Context, line *entity.QuoteLine) error
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	// GetLinesByQuoteID devuelve las líneas en el orden en que fueron insertadas.
	GetLinesByQuoteID(ctx context.Context, quoteID string) ([]*entity.QuoteLine, error)
	// ListByEmployer es la ruta de lectura usada por colaboradores fuera del core.
	ListByEmployer(ctx context.Context, employerID string) ([]*entity.Quote, error)
}
