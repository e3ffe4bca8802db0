package lead

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DialTarget is the dialable form of a lead's phone number.
// Invoking the dialer is left to the caller.
type DialTarget struct {
	Phone  string // as entered
	E164   string // normalized, or the trimmed input when unparseable
	TelURI string
}

// NewDialTarget normalizes phone to E.164 using region for national numbers.
// If parsing fails, the trimmed input is used as-is.
func NewDialTarget(phone, region string) DialTarget {
	trimmed := strings.TrimSpace(phone)
	target := DialTarget{Phone: phone, E164: trimmed}
	if trimmed == "" {
		return target
	}

	if number, err := phonenumbers.Parse(trimmed, region); err == nil && phonenumbers.IsValidNumber(number) {
		target.E164 = phonenumbers.Format(number, phonenumbers.E164)
	}

	target.TelURI = "tel:" + strings.ReplaceAll(target.E164, " ", "")
	return target
}

// Dialable reports whether there is anything to dial.
func (t DialTarget) Dialable() bool {
	return t.E164 != "" && t.E164 != "N/A"
}
