package convert_model

import (
	"time"

	"pagomovil-system/domain/entities"
)

// VerificationEventDTO is the flat payload downstream consumers (order
// service, storefront) get on kafka and mqtt. Masked fields only.
type VerificationEventDTO struct {
	AttemptId   string    `json:"attempt_id"`
	TraceId     string    `json:"trace_id"`
	Reference   string    `json:"reference"`
	PaymentDate string    `json:"payment_date"`
	BankCode    string    `json:"bank_code"`
	BankName    string    `json:"bank_name,omitempty"`
	PayerPhone  string    `json:"payer_phone"`
	Amount      string    `json:"amount"`
	Verified    bool      `json:"verified"`
	Code        int       `json:"code"`
	Reason      string    `json:"reason"`
	Message     string    `json:"message"`
	Channel     string    `json:"channel"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromAttemptToEventDTO(i *entities.VerificationAttempt) VerificationEventDTO {
	return VerificationEventDTO{
		AttemptId:   i.Id,
		TraceId:     i.TraceId,
		Reference:   i.Reference,
		PaymentDate: i.PaymentDate,
		BankCode:    i.BankCode,
		BankName:    i.BankName,
		PayerPhone:  i.PayerPhone,
		Amount:      i.Amount,
		Verified:    i.Outcome.Verified,
		Code:        i.Outcome.Code,
		Reason:      string(i.Outcome.Reason),
		Message:     i.Outcome.Message,
		Channel:     i.Channel,
		CreatedAt:   i.CreatedAt,
	}
}
