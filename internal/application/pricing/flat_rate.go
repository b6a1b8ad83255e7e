package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// BenefitBasicHealth línea de beneficio cubierta por el motor placeholder.
const BenefitBasicHealth = "BASIC_HEALTH"

// flatPremium prima plana CA$100.00 por empleado.
var flatPremium = decimal.New(10000, -2)

// tierFactors factores de tarifación por nivel de cobertura. Con el motor
// plano todos valen 1; el lookup existe para que un nivel desconocido falle
// como error de tarifación y no como silencio.
var tierFactors = map[string]decimal.Decimal{
	entity.TierSingle: decimal.NewFromInt(1),
	entity.TierCouple: decimal.NewFromInt(1),
	entity.TierFamily: decimal.NewFromInt(1),
}

// FlatRateEngine motor de tarifación por defecto: CA$100.00 por empleado,
// beneficio BASIC_HEALTH. Pensado para desarrollo y tests; un motor actuarial
// real implementa el mismo contrato de Engine.
type FlatRateEngine struct{}

var _ Engine = (*FlatRateEngine)(nil)

// NewFlatRateEngine construye el motor plano.
func NewFlatRateEngine() *FlatRateEngine { return &FlatRateEngine{} }

// Price tarifa cada empleado con la prima plana. El employer todavía no
// influye en la tarifa (lo hará el motor actuarial real).
func (e *FlatRateEngine) Price(_ *entity.Employer, employees []dto.EmployeeInput) (decimal.Decimal, []LineItem, error) {
	total := decimal.Zero
	lines := make([]LineItem, 0, len(employees))
	for i, emp := range employees {
		factor, ok := tierFactors[emp.CoverageTier]
		if !ok {
			return decimal.Zero, nil, fmt.Errorf("%w: empleado %d: nivel de cobertura %q sin factor de tarifa", domain.ErrPricing, i, emp.CoverageTier)
		}
		premium := flatPremium.Mul(factor)
		total = total.Add(premium)
		lines = append(lines, LineItem{BenefitCode: BenefitBasicHealth, Premium: premium})
	}
	return total, lines, nil
}
