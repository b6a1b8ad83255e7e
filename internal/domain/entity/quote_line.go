package entity

import "github.com/shopspring/decimal"

// QuoteLine representa una línea de la cotización: la prima de un beneficio
// para un empleado. El empleado referenciado pertenece al mismo Employer que
// la cotización.
type QuoteLine struct {
	ID          string
	QuoteID     string
	EmployeeID  string
	BenefitCode string // ej. BASIC_HEALTH
	Premium     decimal.Decimal
}
