package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Cualquier error que salga del unit of work y NO sea uno de estos centinelas
// se trata como falla de persistencia (infraestructura, reintentable).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrPricing: el motor de tarifación no pudo cotizar uno o más empleados.
	// A esta altura el employer y sus empleados ya están en la transacción,
	// por lo que el caller debe hacer rollback completo.
	ErrPricing = errors.New("no fue posible tarifar la solicitud")

	// ErrLineCountMismatch: el motor devolvió una cantidad de líneas distinta
	// a la cantidad de empleados. Es una violación de contrato entre
	// componentes; nunca se absorbe en silencio ni se reporta como reintentable.
	ErrLineCountMismatch = errors.New("cantidad de líneas no coincide con los empleados")
)
