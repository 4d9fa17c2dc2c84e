package constants

// User-facing wording lives here and nowhere else so every call site shows
// the same message for the same verdict.
const (
	MsgVerified           = "Pago móvil verificado correctamente"
	MsgPaymentNotFound    = "El banco no encontró el pago. Verifique la referencia, la fecha, el monto y el teléfono e intente de nuevo"
	MsgAmountMismatch     = "El monto indicado no coincide con el pago recibido por el banco"
	MsgDateMismatch       = "La fecha indicada no coincide con el pago recibido por el banco"
	MsgPhoneMismatch      = "El teléfono emisor no coincide con el pago recibido por el banco"
	MsgNationalIDMismatch = "La cédula indicada no coincide con el pago recibido por el banco"
	MsgBankUnreachable    = "No se pudo contactar al banco. Intente de nuevo en unos minutos"
	MsgMissingConfig      = "El servicio de verificación no está configurado. Contacte a soporte"
)
