package repository

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	// ListByEmployer devuelve los empleados en el orden en que fueron creados.
	ListByEmployer(ctx context.Context, employerID string) ([]*entity.Employee, error)
}
