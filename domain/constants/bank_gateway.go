package constants

// Nationality prefixes a Venezuelan national id may carry. The default used
// for bare numeric ids is configuration, never inferred here.
const (
	NationalityCitizen         = "V"
	NationalityForeignResident = "E"
	NationalityUnspecified     = ""
)

// CodeInternalError is reported when the conciliation call never produced a
// bank verdict (missing configuration or transport failure).
const CodeInternalError = 500

// ConciliationCode is the numeric code inside a BDV conciliation response.
// Exactly one value means "payment located and matched"; every other value
// is a non-match whose meaning lives in the freeform message.
type ConciliationCode int

const ConciliationApproved ConciliationCode = 1000

func (c ConciliationCode) IsSuccess() bool {
	return c == ConciliationApproved
}

// MismatchReason tags the interpreter verdict so call sites branch on the
// tag instead of parsing the bank prose.
type MismatchReason string

const (
	ReasonVerified           MismatchReason = "VERIFIED"
	ReasonNotFound           MismatchReason = "NOT_FOUND"
	ReasonAmountMismatch     MismatchReason = "AMOUNT_MISMATCH"
	ReasonDateMismatch       MismatchReason = "DATE_MISMATCH"
	ReasonPhoneMismatch      MismatchReason = "PHONE_MISMATCH"
	ReasonNationalIDMismatch MismatchReason = "NATIONAL_ID_MISMATCH"
	ReasonUnclassified       MismatchReason = "UNCLASSIFIED"
	ReasonBankUnreachable    MismatchReason = "BANK_UNREACHABLE"
	ReasonMisconfigured      MismatchReason = "MISCONFIGURED"
)
