package helpers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jakehl/goid"
	"github.com/leekchan/accounting"
	"github.com/spf13/cast"
)

var (
	phoneRegexp     = regexp.MustCompile(`^04\d{9}$`)
	referenceRegexp = regexp.MustCompile(`^\d{4,8}$`)
	bankCodeRegexp  = regexp.MustCompile(`^\d{4}$`)
	nonAlnumRegexp  = regexp.MustCompile(`[^A-Z0-9]`)
)

// NormalizePhone strips hyphens and spaces. It does not reject anything
// beyond that: IsValidPhone is the gate, callers must check it before
// trusting the normalized value.
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.ReplaceAll(phone, " ", "")
	return phone
}

// IsValidPhone - 11-digit Venezuelan mobile format, 04XXXXXXXXX
func IsValidPhone(phone string) bool {
	return phoneRegexp.MatchString(NormalizePhone(phone))
}

// NormalizeNationalID uppercases and strips punctuation. A bare numeric id
// (no V/E prefix) gets defaultNationality prepended; pass an empty default
// to leave the id exactly as the payer entered it.
func NormalizeNationalID(id, defaultNationality string) string {
	cleaned := nonAlnumRegexp.ReplaceAllString(strings.ToUpper(strings.TrimSpace(id)), "")
	if cleaned == "" {
		return ""
	}

	if cleaned[0] >= '0' && cleaned[0] <= '9' && defaultNationality != "" {
		return defaultNationality + cleaned
	}

	return cleaned
}

// IsValidReference - 4 to 8 digits once every whitespace is removed
func IsValidReference(reference string) bool {
	return referenceRegexp.MatchString(strings.Join(strings.Fields(reference), ""))
}

func IsValidBankCode(code string) bool {
	return bankCodeRegexp.MatchString(code)
}

func NormalizeReference(reference string) string {
	return strings.Join(strings.Fields(reference), "")
}

// FormatDateForWire returns the YYYY-MM-DD the bank expects. Accepts a
// time.Time or any string cast can parse; returns "" when it cannot.
// The calendar day is taken in UTC, so a payer west of UTC entering a late
// evening timestamp lands on the next day. Pinned by test, do not change
// without product sign-off.
func FormatDateForWire(date interface{}) string {
	t, err := cast.ToTimeE(date)
	if err != nil || t.IsZero() {
		return ""
	}

	return t.UTC().Format("2006-01-02")
}

// FormatAmountForWire - fixed 2-decimal string, no symbol, no thousands
// separator: 150 -> "150.00"
func FormatAmountForWire(amount float64) string {
	return accounting.FormatNumber(amount, 2, "", ".")
}

// MaskPhone keeps the carrier prefix and the last two digits. The payer
// phone is personal data, nothing else may reach logs or storage.
func MaskPhone(phone string) string {
	normalized := NormalizePhone(phone)
	if len(normalized) < 7 {
		return strings.Repeat("*", len(normalized))
	}

	return normalized[:4] + strings.Repeat("*", len(normalized)-6) + normalized[len(normalized)-2:]
}

func MaskNationalID(id string) string {
	if len(id) < 4 {
		return strings.Repeat("*", len(id))
	}

	return id[:1] + strings.Repeat("*", len(id)-3) + id[len(id)-2:]
}

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

func LocationVenezuela() *time.Location {
	location, err := time.LoadLocation("America/Caracas")
	if err != nil {
		fmt.Println(err)
	}
	return location
}

func GetCurrentTime() time.Time {
	location, err := time.LoadLocation("America/Caracas")
	if err != nil {
		fmt.Println(err)
	}

	timeNow := time.Now()

	return timeNow.In(location)
}
