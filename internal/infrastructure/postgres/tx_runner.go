package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cotizador-api/internal/application/quoting"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ quoting.QuoteTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es el
// único punto de sincronización entre solicitudes concurrentes: cada
// solicitud de cotización corre como un unit of work independiente.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQuoting inicia una transacción, ejecuta fn con repos atados a la tx y
// hace Commit o Rollback. El rollback diferido cubre todos los caminos de
// salida, incluido un ctx cancelado por timeout del caller: si fn falla no
// queda ninguna fila a medio escribir visible para otra transacción.
func (r *TxRunner) RunQuoting(ctx context.Context, fn func(
	employerRepo repository.EmployerRepository,
	employeeRepo repository.EmployeeRepository,
	quoteRepo repository.QuoteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	employerRepo := NewEmployerRepository(tx)
	employeeRepo := NewEmployeeRepository(tx)
	quoteRepo := NewQuoteRepository(tx)

	if err := fn(employerRepo, employeeRepo, quoteRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
