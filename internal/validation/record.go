package validation

import (
	"strings"

	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/storeerror"
)

// ValidateRecord returns a *storeerror.ValidationError when the record cannot
// be persisted. Blank fields are reported before a malformed IBAN.
func ValidateRecord(r models.BankRecord) error {
	required := []struct {
		field string
		value string
	}{
		{"accountName", r.AccountName},
		{"bankName", r.BankName},
		{"iban", r.IBAN},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &storeerror.ValidationError{Field: f.field, Reason: storeerror.ReasonRequired}
		}
	}

	if !IsValidIBAN(r.IBAN) {
		return &storeerror.ValidationError{
			Field:  "iban",
			Reason: "must be TR followed by 24 digits (26 characters)",
		}
	}
	return nil
}
