package dto

import "github.com/shopspring/decimal"

// EmployeeInput empleado dentro del body de POST /api/quotes.
// BirthDate en formato ISO (YYYY-MM-DD). AnnualSalary positivo, máximo 2 decimales.
type EmployeeInput struct {
	FirstName    string          `json:"first_name" validate:"required"`
	LastName     string          `json:"last_name" validate:"required"`
	BirthDate    string          `json:"birth_date" validate:"required,datetime=2006-01-02"`
	CoverageTier string          `json:"coverage_tier" validate:"required,coverage_tier"`
	AnnualSalary decimal.Decimal `json:"annual_salary" validate:"salary"`
}

// CreateQuoteRequest body para POST /api/quotes: el employer junto con la
// lista ordenada de sus empleados. Cada solicitud crea un Employer nuevo.
type CreateQuoteRequest struct {
	Name         string          `json:"name" validate:"required"`
	Province     string          `json:"province" validate:"required,province_ca"`
	IndustryCode string          `json:"industry_code" validate:"required"`
	Employees    []EmployeeInput `json:"employees" validate:"required,min=1,dive"`
}

// QuoteLineItemResponse línea de la cotización en respuestas. Conserva el
// orden de los empleados enviados en la solicitud.
type QuoteLineItemResponse struct {
	EmployeeID  string          `json:"employee_id"`
	BenefitCode string          `json:"benefit_code"`
	Premium     decimal.Decimal `json:"premium"`
}

// QuoteResponse respuesta de POST /api/quotes y GET /api/quotes/:id.
type QuoteResponse struct {
	QuoteID      string                  `json:"quote_id"`
	EmployerID   string                  `json:"employer_id"`
	PremiumTotal decimal.Decimal         `json:"premium_total"`
	LineItems    []QuoteLineItemResponse `json:"line_items"`
	CreatedAt    string                  `json:"created_at,omitempty"`
}

// QuoteSummaryResponse elemento de GET /api/employers/:id/quotes (sin líneas).
type QuoteSummaryResponse struct {
	QuoteID      string          `json:"quote_id"`
	EmployerID   string          `json:"employer_id"`
	PremiumTotal decimal.Decimal `json:"premium_total"`
	CreatedAt    string          `json:"created_at"`
}
