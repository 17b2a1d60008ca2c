package util

import "errors"

var (
	ErrUserNotFound       = errors.New("Usuario no encontrado")
	ErrEmailRegistered    = errors.New("El correo ya está registrado")
	ErrInvalidCredentials = errors.New("Credenciales inválidas")
	ErrTaskNotFound       = errors.New("Tarea no encontrada")
	ErrGoalNotFound       = errors.New("Meta no encontrada")
	ErrCategoryNotFound   = errors.New("Categoría no encontrada")
	ErrModeNotFound       = errors.New("Modo no encontrado")
	ErrModeNotActive      = errors.New("Modo no activado")
	ErrDuplicateCategory  = errors.New("Ya existe una categoría con este nombre")
	ErrResetTokenInvalid  = errors.New("Token inválido")
	ErrResetTokenExpired  = errors.New("Token expirado")
	ErrSelfDelete         = errors.New("No puedes eliminar tu propia cuenta")
	ErrWrongPassword      = errors.New("Contraseña actual incorrecta")
	ErrPasswordMismatch   = errors.New("Las nuevas contraseñas no coinciden")
	ErrPasswordUnchanged  = errors.New("La nueva contraseña debe ser diferente a la actual")
	ErrEmailUnchanged     = errors.New("El nuevo correo debe ser diferente al actual")
	ErrNegativeProgress   = errors.New("Progreso no puede ser negativo")
	ErrInvalidPeriod      = errors.New("Período inválido")
	ErrMailSend           = errors.New("error enviando email")
)

// ValidationError marca un fallo de validación de campo; el controlador lo
// traduce a 400 con el mensaje tal cual.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Invalid(message string) error {
	return &ValidationError{Message: message}
}
