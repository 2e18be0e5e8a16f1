package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrSchemaMissing indica que la tabla del backend no existe todavía.
	// Es la única clase de error que activa el modo fallback de un repositorio;
	// cualquier otro fallo del gateway se propaga como error de persistencia.
	ErrSchemaMissing = errors.New("la tabla del backend no existe")
)
