package application

import (
	"sync/atomic"

	"go.uber.org/zap"
	context2 "golang.org/x/net/context"

	"pagomovil-system/domain/constants"
	"pagomovil-system/domain/entities"
	uerrors "pagomovil-system/utils/errors"
	"pagomovil-system/utils/gen_ids"
	"pagomovil-system/utils/helpers"
)

// VerifyPagoMovil runs the whole flow for one claim: gate the input, call
// the bank once, persist the audit record, fan the outcome out. The
// returned error only ever reports invalid input; a bank non-match or an
// unreachable bank is a normal outcome inside the attempt.
func (us *VerificationApplication) VerifyPagoMovil(ctx context2.Context, claim entities.PaymentClaim, opts entities.VerifyOptions, channel string) (*entities.VerificationAttempt, error) {
	if err := validateClaim(claim); err != nil {
		return nil, err
	}

	outcome := us.BankServiceRepository.VerifyMobilePayment(ctx, claim, opts)

	attempt := us.buildAttempt(claim, outcome, channel)

	if _, err := us.VerificationRepository.Create(ctx, attempt); err != nil {
		// the verdict still stands, losing the audit row must not hide it
		us.Logger.With(zap.Error(err)).Error("can not persist verification attempt")
	}

	us.PublishOutcome(attempt)

	if outcome.Reason == constants.ReasonBankUnreachable {
		streak := atomic.AddInt64(&us.unreachableStreak, 1)
		us.AlertBankUnreachable(attempt, streak)
	} else if outcome.CallSucceeded {
		atomic.StoreInt64(&us.unreachableStreak, 0)
	}

	return attempt, nil
}

func validateClaim(claim entities.PaymentClaim) error {
	if !helpers.IsValidPhone(claim.PayerPhone) {
		return uerrors.ErrInvalidPhone
	}

	if !helpers.IsValidBankCode(claim.OriginBankCode) {
		return uerrors.ErrInvalidBankCode
	}

	if !helpers.IsValidReference(claim.Reference) {
		return uerrors.ErrInvalidReference
	}

	if claim.Amount <= 0 {
		return uerrors.ErrInvalidAmount
	}

	if helpers.FormatDateForWire(claim.PaymentDate) == "" {
		return uerrors.ErrInvalidDate
	}

	return nil
}

func (us *VerificationApplication) buildAttempt(claim entities.PaymentClaim, outcome entities.VerificationOutcome, channel string) *entities.VerificationAttempt {
	attempt := &entities.VerificationAttempt{
		Id:          us.Config.Prefix + gen_ids.GetIdAttemptId(),
		TraceId:     helpers.GetUUId(),
		Reference:   helpers.NormalizeReference(claim.Reference),
		PaymentDate: helpers.FormatDateForWire(claim.PaymentDate),
		BankCode:    claim.OriginBankCode,
		PayerPhone:  helpers.MaskPhone(claim.PayerPhone),
		Amount:      helpers.FormatAmountForWire(claim.Amount),
		Channel:     channel,
		Outcome:     outcome,
		CreatedAt:   helpers.GetCurrentTime(),
	}

	if claim.PayerNationalID != "" {
		attempt.PayerNationalId = helpers.MaskNationalID(
			helpers.NormalizeNationalID(claim.PayerNationalID, us.Config.BDV.DefaultNationality))
	}

	if bank, ok := entities.LookupBank(claim.OriginBankCode); ok {
		attempt.BankName = bank.ShortName
	}

	return attempt
}

// GetAttemptsByReference returns the audit trail of one payment reference,
// newest first. Masked fields only, same as what was stored.
func (us *VerificationApplication) GetAttemptsByReference(ctx context2.Context, reference string) ([]*entities.VerificationAttempt, error) {
	if !helpers.IsValidReference(reference) {
		return nil, uerrors.ErrInvalidReference
	}

	return us.VerificationRepository.FindByReference(ctx, helpers.NormalizeReference(reference))
}

// ListBanks returns the static registry for the storefront bank picker.
func (us *VerificationApplication) ListBanks() []entities.BankInfo {
	return entities.VenezuelanBanks
}
