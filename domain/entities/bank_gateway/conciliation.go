package entities

import "pagomovil-system/domain/constants"

// ConciliationRequest is the exact JSON body the BDV conciliation endpoint
// takes. Every field is already normalized; the client never sends raw user
// input.
type ConciliationRequest struct {
	CedulaPagador   string `json:"cedulaPagador"`
	TelefonoPagador string `json:"telefonoPagador"`
	TelefonoDestino string `json:"telefonoDestino"`
	Referencia      string `json:"referencia"`
	FechaPago       string `json:"fechaPago"`
	Importe         string `json:"importe"`
	BancoOrigen     string `json:"bancoOrigen"`
	ReqCed          bool   `json:"reqCed"`
}

type ConciliationResponse struct {
	Code    constants.ConciliationCode `json:"code"`
	Message string                     `json:"message,omitempty"`
	Data    *ConciliationData          `json:"data,omitempty"`
}

type ConciliationData struct {
	Amount string `json:"amount,omitempty"`
}
