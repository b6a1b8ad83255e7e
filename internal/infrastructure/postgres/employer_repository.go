package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ repository.EmployerRepository = (*EmployerRepo)(nil)

// EmployerRepo implementación de EmployerRepository (usable con pool o tx).
type EmployerRepo struct {
	q Querier
}

// NewEmployerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployerRepository(q Querier) *EmployerRepo {
	return &EmployerRepo{q: q}
}

// Create persiste un employer nuevo.
func (r *EmployerRepo) Create(ctx context.Context, employer *entity.Employer) error {
	query := `
		INSERT INTO employers (id, name, province, industry_code, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		employer.ID, employer.Name, employer.Province, employer.IndustryCode, employer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employer: %w", err)
	}
	return nil
}

// GetByID obtiene un employer por ID. Devuelve (nil, nil) si no existe.
func (r *EmployerRepo) GetByID(ctx context.Context, id string) (*entity.Employer, error) {
	query := `
		SELECT id, name, province, industry_code, created_at
		FROM employers WHERE id = $1`
	var e entity.Employer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Province, &e.IndustryCode, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employer: %w", err)
	}
	return &e, nil
}
