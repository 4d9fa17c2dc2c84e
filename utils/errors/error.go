package errors

import (
	"errors"
)

var (
	// ErrInvalidPhone will throw if the payer phone fails the 04XXXXXXXXX shape
	ErrInvalidPhone     = errors.New("El teléfono debe tener el formato 04XXXXXXXXX")
	ErrInvalidBankCode  = errors.New("El código del banco emisor debe tener 4 dígitos")
	ErrInvalidReference = errors.New("La referencia debe tener entre 4 y 8 dígitos")
	ErrInvalidAmount    = errors.New("El monto debe ser mayor que cero")
	ErrInvalidDate      = errors.New("La fecha del pago no es válida")
	ErrGeneral          = errors.New("Ha ocurrido un error. Intente de nuevo más tarde")
)
