package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// Errores del integrador remoto (marketplace). Los llamadores distinguen
	// "no hay datos" de "no se pudo determinar el estado remoto".
	ErrRemoteCredentialsMissing = errors.New("credenciales del marketplace incompletas")
	ErrRemoteRequestFailed      = errors.New("el marketplace rechazó la petición")
	ErrRemoteResponseMalformed  = errors.New("respuesta del marketplace no interpretable")
)
