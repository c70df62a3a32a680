package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrRecipeNotResolved indica que una línea vendida no tiene receta asociada.
	// Es recuperable: el caller omite el descuento de inventario de esa línea
	// y continúa, sin abortar la transacción.
	ErrRecipeNotResolved = errors.New("receta no resuelta para el producto")
)
