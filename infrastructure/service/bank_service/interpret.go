package bank_service

import (
	"fmt"
	"strings"

	"pagomovil-system/domain/constants"
)

// interpretRule maps known phrases inside the bank message to a verdict.
// Order matters: the first hit wins, so the not-found variants sit before
// the broader field-mismatch phrases. The bank returns freeform prose, a
// wording change on their side falls through to the generic message.
type interpretRule struct {
	substrings []string
	reason     constants.MismatchReason
	message    string
}

var interpretRules = []interpretRule{
	{
		substrings: []string{"registro solicitado no existe", "no existe", "no se encontr", "no encontrado"},
		reason:     constants.ReasonNotFound,
		message:    constants.MsgPaymentNotFound,
	},
	{
		substrings: []string{"importe", "monto"},
		reason:     constants.ReasonAmountMismatch,
		message:    constants.MsgAmountMismatch,
	},
	{
		substrings: []string{"fecha"},
		reason:     constants.ReasonDateMismatch,
		message:    constants.MsgDateMismatch,
	},
	{
		substrings: []string{"teléfono", "telefono"},
		reason:     constants.ReasonPhoneMismatch,
		message:    constants.MsgPhoneMismatch,
	},
	{
		substrings: []string{"cédula", "cedula"},
		reason:     constants.ReasonNationalIDMismatch,
		message:    constants.MsgNationalIDMismatch,
	},
}

// Interpret turns a non-sentinel (code, message) pair into a tagged verdict
// and one user-facing diagnostic. Total: unmatched input always yields the
// generic fallback, never an empty message.
func Interpret(code int, message string) (constants.MismatchReason, string) {
	lowered := strings.ToLower(message)

	for _, rule := range interpretRules {
		for _, substring := range rule.substrings {
			if strings.Contains(lowered, substring) {
				return rule.reason, rule.message
			}
		}
	}

	return constants.ReasonUnclassified, fmt.Sprintf("El banco no pudo verificar el pago (código %v): %v", code, message)
}
