package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado. La columna seq (BIGSERIAL) registra el orden
// de inserción, que es el orden del input de la solicitud.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, employer_id, first_name, last_name, birth_date, coverage_tier, annual_salary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		employee.ID, employee.EmployerID, employee.FirstName, employee.LastName,
		employee.BirthDate, employee.CoverageTier, employee.AnnualSalary, employee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// ListByEmployer devuelve los empleados en orden de inserción.
func (r *EmployeeRepo) ListByEmployer(ctx context.Context, employerID string) ([]*entity.Employee, error) {
	query := `
		SELECT id, employer_id, first_name, last_name, birth_date, coverage_tier, annual_salary, created_at
		FROM employees WHERE employer_id = $1 ORDER BY seq`
	rows, err := r.q.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(
			&e.ID, &e.EmployerID, &e.FirstName, &e.LastName,
			&e.BirthDate, &e.CoverageTier, &e.AnnualSalary, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
