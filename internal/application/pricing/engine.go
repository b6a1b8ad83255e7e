// Package pricing define el puerto de tarifación: una función pura que
// convierte (employer, lista ordenada de empleados) en (prima total, líneas
// por empleado). Sin I/O y determinista: el mismo input produce siempre el
// mismo output, requisito para reintentos idempotentes y testabilidad.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// LineItem es una prima calculada para un empleado, antes de persistir.
// No conoce el ID persistido del empleado: las líneas se devuelven en el
// mismo orden que el input y el orquestador las empareja posicionalmente.
type LineItem struct {
	BenefitCode string
	Premium     decimal.Decimal
}

// Engine es el puerto que implementa el motor de tarifación.
// Contrato: una línea por empleado, en el orden del input; cada prima es
// no negativa y el total es exactamente la suma de las líneas. Un error de
// tarifación (envuelve domain.ErrPricing) es fatal para toda la solicitud:
// el orquestador hace rollback de todo lo escrito.
type Engine interface {
	Price(employer *entity.Employer, employees []dto.EmployeeInput) (total decimal.Decimal, lines []LineItem, err error)
}
