// Package validator envuelve go-playground/validator con las reglas propias
// del dominio de cotización (nivel de cobertura, provincia, salario decimal).
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// Validator wrapper para inyección y registro de reglas custom.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con las reglas del dominio registradas:
//
//	coverage_tier — single | couple | family
//	province_ca   — código de provincia canadiense de 2 letras
//	salary        — decimal estrictamente positivo con máximo 2 decimales
func New() (*Validator, error) {
	v := validator.New()
	if err := v.RegisterValidation("coverage_tier", validateCoverageTier); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("province_ca", validateProvinceCA); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("salary", validateSalary); err != nil {
		return nil, err
	}
	return &Validator{v: v}, nil
}

// Struct valida un struct según sus tags `validate`.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

func validateCoverageTier(fl validator.FieldLevel) bool {
	return entity.ValidTier(fl.Field().String())
}

func validateProvinceCA(fl validator.FieldLevel) bool {
	return entity.ValidProvinces[fl.Field().String()]
}

// validateSalary: estrictamente positivo y sin más de 2 decimales.
// El exponente de shopspring/decimal es negativo para cifras decimales:
// 50000.00 → exponent -2, 50000.125 → exponent -3 (inválido).
func validateSalary(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive() && d.Exponent() >= -2
}
