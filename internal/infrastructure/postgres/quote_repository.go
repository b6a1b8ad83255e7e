package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste la cabecera de la cotización.
func (r *QuoteRepo) Create(ctx context.Context, quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, employer_id, premium_total, requested_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		quote.ID, quote.EmployerID, quote.PremiumTotal, nullIfEmpty(quote.RequestedBy), quote.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// CreateLine persiste una línea. La columna seq (BIGSERIAL) registra el orden
// de inserción, que es el orden de los empleados de la solicitud.
func (r *QuoteRepo) CreateLine(ctx context.Context, line *entity.QuoteLine) error {
	query := `
		INSERT INTO quote_lines (id, quote_id, employee_id, benefit_code, premium)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		line.ID, line.QuoteID, line.EmployeeID, line.BenefitCode, line.Premium,
	)
	if err != nil {
		return fmt.Errorf("insert quote line: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID. Devuelve (nil, nil) si no existe.
func (r *QuoteRepo) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	query := `
		SELECT id, employer_id, premium_total, COALESCE(requested_by, ''), created_at
		FROM quotes WHERE id = $1`
	var q entity.Quote
	err := r.q.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.EmployerID, &q.PremiumTotal, &q.RequestedBy, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// GetLinesByQuoteID obtiene las líneas en orden de inserción.
func (r *QuoteRepo) GetLinesByQuoteID(ctx context.Context, quoteID string) ([]*entity.QuoteLine, error) {
	query := `
		SELECT id, quote_id, employee_id, benefit_code, premium
		FROM quote_lines WHERE quote_id = $1 ORDER BY seq`
	rows, err := r.q.Query(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuoteLine
	for rows.Next() {
		var l entity.QuoteLine
		if err := rows.Scan(&l.ID, &l.QuoteID, &l.EmployeeID, &l.BenefitCode, &l.Premium); err != nil {
			return nil, fmt.Errorf("scan quote line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListByEmployer devuelve todas las cotizaciones de un employer, la más
// reciente primero.
func (r *QuoteRepo) ListByEmployer(ctx context.Context, employerID string) ([]*entity.Quote, error) {
	query := `
		SELECT id, employer_id, premium_total, COALESCE(requested_by, ''), created_at
		FROM quotes WHERE employer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(&q.ID, &q.EmployerID, &q.PremiumTotal, &q.RequestedBy, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}
