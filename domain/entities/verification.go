package entities

import (
	"time"

	"pagomovil-system/domain/constants"

	eBankGw "pagomovil-system/domain/entities/bank_gateway"
)

// PaymentClaim is what the payer typed into the storefront: which phone
// sent how much, from which bank, under which reference, on which day.
type PaymentClaim struct {
	PayerPhone             string  `json:"payer_phone"`
	OriginBankCode         string  `json:"origin_bank_code"`
	Reference              string  `json:"reference"`
	PaymentDate            string  `json:"payment_date"`
	Amount                 float64 `json:"amount"`
	PayerNationalID        string  `json:"payer_national_id,omitempty"`
	RequireNationalIdMatch bool    `json:"require_national_id_match,omitempty"`
}

// VerifyOptions - nil UseQualityEnvironment means "whatever the process is
// configured for"; the choice is fixed before the request is built.
type VerifyOptions struct {
	UseQualityEnvironment *bool `json:"use_quality_environment,omitempty"`
}

// VerificationOutcome is the single result type every code path of the
// client returns. CallSucceeded separates "the bank answered" from "we
// never reached the bank"; callers must not conflate the two.
type VerificationOutcome struct {
	CallSucceeded bool                          `json:"call_succeeded" bson:"call_succeeded"`
	Verified      bool                          `json:"verified" bson:"verified"`
	Code          int                           `json:"code" bson:"code"`
	Reason        constants.MismatchReason      `json:"reason" bson:"reason"`
	Message       string                        `json:"message" bson:"message"`
	Amount        string                        `json:"amount,omitempty" bson:"amount,omitempty"`
	RawResponse   *eBankGw.ConciliationResponse `json:"raw_response,omitempty" bson:"raw_response,omitempty"`
}

// VerificationAttempt is the persisted audit record of one conciliation
// call. Payer phone and national id are stored masked.
type VerificationAttempt struct {
	Id              string              `json:"id" bson:"_id"`
	TraceId         string              `json:"trace_id" bson:"trace_id"`
	Reference       string              `json:"reference" bson:"reference"`
	PaymentDate     string              `json:"payment_date" bson:"payment_date"`
	BankCode        string              `json:"bank_code" bson:"bank_code"`
	BankName        string              `json:"bank_name,omitempty" bson:"bank_name,omitempty"`
	PayerPhone      string              `json:"payer_phone" bson:"payer_phone"`
	PayerNationalId string              `json:"payer_national_id,omitempty" bson:"payer_national_id,omitempty"`
	Amount          string              `json:"amount" bson:"amount"`
	Channel         string              `json:"channel" bson:"channel"`
	Outcome         VerificationOutcome `json:"outcome" bson:"outcome"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at"`
}
