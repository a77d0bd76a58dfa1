// Package models holds the data shapes persisted by iban-book.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// ReservedCategory is the synthetic "all" view. It is listed in the
// categories document but never stored as a partition of the banks document.
const ReservedCategory = "tümü"

// Storage keys of the two persisted documents.
const (
	BanksKey      = "banks"
	CategoriesKey = "categories"
)

// BankRecord is one saved bank account.
type BankRecord struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	AccountName string `json:"accountName" yaml:"account_name"`
	BankName    string `json:"bankName" yaml:"bank_name"`
	IBAN        string `json:"iban" yaml:"iban"`
}

// NewRecordID returns a fresh record identifier.
func NewRecordID() string {
	return uuid.New().String()
}

// Equal compares the user-visible fields, ignoring the ID.
func (r BankRecord) Equal(other BankRecord) bool {
	return r.AccountName == other.AccountName &&
		r.BankName == other.BankName &&
		r.IBAN == other.IBAN
}

// ShortID is the first block of the UUID, enough to tell records apart in
// listings.
func (r BankRecord) ShortID() string {
	if i := strings.IndexByte(r.ID, '-'); i > 0 {
		return r.ID[:i]
	}
	return r.ID
}

// BankInfo is the presentation data for a known bank code.
type BankInfo struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	Logo string `json:"logo" yaml:"logo"`
}
