package repository

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// EmployerRepository define el puerto de persistencia para Employer.
type EmployerRepository interface {
	Create(ctx context.Context, employer *entity.Employer) error
	GetByID(ctx context.Context, id string) (*entity.Employer, error)
}
