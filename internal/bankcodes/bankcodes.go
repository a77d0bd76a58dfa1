// Package bankcodes maps the bank-code field of a Turkish IBAN to the bank's
// display name and logo. The result is presentation data only; records keep
// the bank name the user typed.
package bankcodes

import (
	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/validation"
)

// minRawLength is the shortest raw input worth looking at.
const minRawLength = 8

// The bank-code field of a Turkish IBAN: five digits after "TR" and the two
// check digits. Codes are published with four significant digits, so the
// table is keyed by the last four.
const (
	codeFieldStart = 4
	codeFieldEnd   = 9
)

var builtin = map[string]models.BankInfo{
	"0010": {Code: "0010", Name: "Ziraat Bankası", Logo: "banks/0010.png"},
	"0013": {Code: "0013", Name: "Denizbank", Logo: "banks/0013.png"},
	"0064": {Code: "0064", Name: "İş Bankası", Logo: "banks/0064.png"},
}

// Builtin returns a copy of the compiled-in table.
func Builtin() map[string]models.BankInfo {
	out := make(map[string]models.BankInfo, len(builtin))
	for k, v := range builtin {
		out[k] = v
	}
	return out
}

// BankCode extracts the four-digit bank code from iban. ok is false when the
// input is too short to carry one.
func BankCode(iban string) (code string, ok bool) {
	if len(iban) < minRawLength {
		return "", false
	}
	stripped := validation.StripIBAN(iban)
	if len(stripped) < codeFieldEnd {
		return "", false
	}
	return stripped[codeFieldStart+1 : codeFieldEnd], true
}

// GetBankFromIBAN looks iban up in the built-in table.
func GetBankFromIBAN(iban string) (models.BankInfo, bool) {
	return lookup(builtin, iban)
}

func lookup(table map[string]models.BankInfo, iban string) (models.BankInfo, bool) {
	code, ok := BankCode(iban)
	if !ok {
		return models.BankInfo{}, false
	}
	info, ok := table[code]
	return info, ok
}
