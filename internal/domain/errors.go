package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUnauthenticated    = errors.New("no hay sesión autenticada")
	ErrUnauthorized       = errors.New("no autorizado para esta acción")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvitationClaimed  = errors.New("la invitación ya fue aceptada")
)
