package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrUserNotFound           = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrInvalidTransition      = errors.New("transición de estado no permitida")
	ErrValidationFailed       = errors.New("precondición de la transición no cumplida")
	ErrUnknownState           = errors.New("estado de workflow desconocido")
	ErrConcurrentModification = errors.New("el evento fue modificado por otra operación")
	ErrCategoryInUse          = errors.New("la categoría tiene movimientos asociados")
)
