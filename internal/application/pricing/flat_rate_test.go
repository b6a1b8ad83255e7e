package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/pricing"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testEmployer() *entity.Employer {
	return &entity.Employer{
		ID:           "00000000-0000-0000-0000-0000000000e1",
		Name:         "Maple Logistics Inc.",
		Province:     "ON",
		IndustryCode: "4841",
	}
}

func employeeWithTier(tier string) dto.EmployeeInput {
	return dto.EmployeeInput{
		FirstName:    "Ana",
		LastName:     "Torres",
		BirthDate:    "1990-04-17",
		CoverageTier: tier,
		AnnualSalary: decimal.NewFromInt(85000),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FlatRateEngine
// ──────────────────────────────────────────────────────────────────────────────

// Un solo empleado → total CA$100.00 con una línea BASIC_HEALTH de 100.00.
func TestPrice_UnEmpleado(t *testing.T) {
	engine := pricing.NewFlatRateEngine()
	employer := &entity.Employer{
		ID:           "00000000-0000-0000-0000-0000000000e2",
		Name:         "Acme Widgets Ltd.",
		Province:     "ON",
		IndustryCode: "5411",
	}
	employees := []dto.EmployeeInput{
		{
			FirstName:    "Jordan",
			LastName:     "Lee",
			BirthDate:    "1985-02-03",
			CoverageTier: entity.TierSingle,
			AnnualSalary: decimal.RequireFromString("50000.00"),
		},
	}

	total, lines, err := engine.Price(employer, employees)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, pricing.BenefitBasicHealth, lines[0].BenefitCode)
	assert.True(t, decimal.RequireFromString("100.00").Equal(lines[0].Premium))
	assert.True(t, decimal.RequireFromString("100.00").Equal(total))
}

// Tres empleados a CA$100.00 cada uno → total CA$300.00 y una línea por empleado.
func TestPrice_TresEmpleadosTotal300(t *testing.T) {
	engine := pricing.NewFlatRateEngine()
	employees := []dto.EmployeeInput{
		employeeWithTier(entity.TierSingle),
		employeeWithTier(entity.TierCouple),
		employeeWithTier(entity.TierFamily),
	}

	total, lines, err := engine.Price(testEmployer(), employees)

	require.NoError(t, err)
	require.Len(t, lines, 3, "debe haber exactamente una línea por empleado")
	assert.True(t, decimal.RequireFromString("300.00").Equal(total),
		"el total debe ser 300.00, fue %s", total)
	for i, line := range lines {
		assert.Equal(t, pricing.BenefitBasicHealth, line.BenefitCode, "línea %d", i)
		assert.True(t, decimal.RequireFromString("100.00").Equal(line.Premium),
			"la prima de la línea %d debe ser 100.00, fue %s", i, line.Premium)
	}
}

// El total debe ser exactamente la suma de las primas de las líneas.
func TestPrice_TotalEsSumaDeLineas(t *testing.T) {
	engine := pricing.NewFlatRateEngine()
	employees := []dto.EmployeeInput{
		employeeWithTier(entity.TierSingle),
		employeeWithTier(entity.TierSingle),
		employeeWithTier(entity.TierFamily),
		employeeWithTier(entity.TierCouple),
		employeeWithTier(entity.TierSingle),
	}

	total, lines, err := engine.Price(testEmployer(), employees)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Premium)
	}
	assert.True(t, sum.Equal(total), "total %s debe igualar la suma de líneas %s", total, sum)
}

// Mismo input dos veces → mismo total y mismas líneas (determinismo).
func TestPrice_Determinista(t *testing.T) {
	engine := pricing.NewFlatRateEngine()
	employees := []dto.EmployeeInput{
		employeeWithTier(entity.TierCouple),
		employeeWithTier(entity.TierFamily),
	}

	total1, lines1, err1 := engine.Price(testEmployer(), employees)
	total2, lines2, err2 := engine.Price(testEmployer(), employees)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, total1.Equal(total2), "el mismo input siempre debe producir el mismo total")
	require.Equal(t, len(lines1), len(lines2))
	for i := range lines1 {
		assert.Equal(t, lines1[i].BenefitCode, lines2[i].BenefitCode)
		assert.True(t, lines1[i].Premium.Equal(lines2[i].Premium))
	}
}

// Las líneas deben salir en el mismo orden que los empleados del input.
func TestPrice_ConservaOrdenDelInput(t *testing.T) {
	engine := pricing.NewFlatRateEngine()
	employees := []dto.EmployeeInput{
		employeeWithTier(entity.TierFamily),
		employeeWithTier(entity.TierSingle),
		employeeWithTier(entity.TierCouple),
	}

	_, lines, err := engine.Price(testEmployer(), employees)

	require.NoError(t, err)
	require.Len(t, lines, len(employees),
		"el contrato exige exactamente una línea por empleado, en el mismo orden")
}

// Un nivel de cobertura desconocido debe fallar como ErrPricing, nunca en silencio.
func TestPrice_TierDesconocidoEsErrorDeTarifacion(t *testing.T) {
	engine := pricing.NewFlatRateEngine()
	employees := []dto.EmployeeInput{
		employeeWithTier(entity.TierSingle),
		employeeWithTier("platinum"),
	}

	total, lines, err := engine.Price(testEmployer(), employees)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPricing)
	assert.Nil(t, lines, "ante un error no debe devolverse ninguna línea parcial")
	assert.True(t, total.IsZero())
}

// Lista vacía: total cero y cero líneas (el caso lo rechaza antes la validación
// del use case; el motor no debe romperse si lo recibe).
func TestPrice_SinEmpleados(t *testing.T) {
	engine := pricing.NewFlatRateEngine()

	total, lines, err := engine.Price(testEmployer(), nil)

	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.True(t, total.IsZero())
}
