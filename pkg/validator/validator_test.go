package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/pkg/validator"
)

type salaryHolder struct {
	Salary decimal.Decimal `validate:"salary"`
}

type tierHolder struct {
	Tier string `validate:"coverage_tier"`
}

type provinceHolder struct {
	Province string `validate:"province_ca"`
}

func newValidator(t *testing.T) *validator.Validator {
	t.Helper()
	v, err := validator.New()
	require.NoError(t, err)
	return v
}

func TestSalary_PositivoConDosDecimales(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(salaryHolder{Salary: decimal.RequireFromString("72500.50")}))
	assert.NoError(t, v.Struct(salaryHolder{Salary: decimal.NewFromInt(1)}))
}

func TestSalary_CeroYNegativoInvalidos(t *testing.T) {
	v := newValidator(t)
	assert.Error(t, v.Struct(salaryHolder{Salary: decimal.Zero}), "salario cero debe rechazarse")
	assert.Error(t, v.Struct(salaryHolder{Salary: decimal.RequireFromString("-100.00")}))
}

func TestSalary_MasDeDosDecimalesInvalido(t *testing.T) {
	v := newValidator(t)
	assert.Error(t, v.Struct(salaryHolder{Salary: decimal.RequireFromString("50000.125")}),
		"más de 2 decimales debe rechazarse")
}

func TestCoverageTier_Valores(t *testing.T) {
	v := newValidator(t)
	for _, tier := range []string{"single", "couple", "family"} {
		assert.NoError(t, v.Struct(tierHolder{Tier: tier}), "tier %s debe ser válido", tier)
	}
	assert.Error(t, v.Struct(tierHolder{Tier: "platinum"}))
	assert.Error(t, v.Struct(tierHolder{Tier: "SINGLE"}), "los tiers son case-sensitive")
}

func TestProvinceCA_Codigos(t *testing.T) {
	v := newValidator(t)
	for _, p := range []string{"ON", "QC", "BC", "AB", "YT", "NU"} {
		assert.NoError(t, v.Struct(provinceHolder{Province: p}), "provincia %s debe ser válida", p)
	}
	assert.Error(t, v.Struct(provinceHolder{Province: "XX"}))
	assert.Error(t, v.Struct(provinceHolder{Province: "on"}))
}
