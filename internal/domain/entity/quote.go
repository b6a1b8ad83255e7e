package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote representa la cabecera de una cotización de beneficios.
// Invariante: PremiumTotal es exactamente la suma de las primas de sus líneas.
type Quote struct {
	ID           string
	EmployerID   string
	PremiumTotal decimal.Decimal
	RequestedBy  string // identidad opaca del usuario que solicitó la cotización
	CreatedAt    time.Time
}
