// Package export turns bank records into the text handed to the clipboard or
// a share target, and into CSV files.
package export

import (
	"strings"

	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/storeerror"
)

const recordSeparator = "\n\n"

// FormatRecord renders one record as a three-line block.
func FormatRecord(r models.BankRecord) string {
	return r.AccountName + "\nBanka: " + r.BankName + "\nIBAN: " + r.IBAN
}

// FormatRecords renders records separated by a blank line.
func FormatRecords(records []models.BankRecord) (string, error) {
	if len(records) == 0 {
		return "", storeerror.ErrNothingToExport
	}
	blocks := make([]string, len(records))
	for i, r := range records {
		blocks[i] = FormatRecord(r)
	}
	return strings.Join(blocks, recordSeparator), nil
}
