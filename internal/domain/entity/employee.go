package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de cobertura elegibles para un empleado.
const (
	TierSingle = "single"
	TierCouple = "couple"
	TierFamily = "family"
)

// ValidTier indica si el nivel de cobertura es uno de los enumerados.
func ValidTier(tier string) bool {
	return tier == TierSingle || tier == TierCouple || tier == TierFamily
}

// Employee representa un empleado del Employer. Se crea junto con su
// Employer en la misma solicitud y es inmutable después.
type Employee struct {
	ID           string
	EmployerID   string
	FirstName    string
	LastName     string
	BirthDate    time.Time
	CoverageTier string          // single, couple, family
	AnnualSalary decimal.Decimal // positivo, 2 decimales
	CreatedAt    time.Time
}
