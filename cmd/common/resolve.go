package common

import (
	"fmt"
	"strings"

	"fjacquet/iban-book/internal/book"
	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/storeerror"
)

// Resolve finds a record by its full ID or by an unambiguous prefix such as
// the short ID printed in listings. An empty category searches everywhere.
func Resolve(b *book.Book, category, id string) (string, models.BankRecord, error) {
	scope := category
	if strings.TrimSpace(scope) == "" {
		scope = models.ReservedCategory
	}
	if id == "" {
		return "", models.BankRecord{}, &storeerror.ValidationError{Field: "id", Reason: storeerror.ReasonRequired}
	}

	type match struct {
		category string
		record   models.BankRecord
	}
	var matches []match
	for _, g := range b.Groups(scope) {
		for _, r := range g.Records {
			if r.ID == id {
				return g.Category, r, nil
			}
			if strings.HasPrefix(r.ID, id) {
				matches = append(matches, match{g.Category, r})
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0].category, matches[0].record, nil
	case 0:
		return "", models.BankRecord{}, &storeerror.NotFoundError{Category: book.NormalizeCategory(scope), ID: id}
	default:
		return "", models.BankRecord{}, &storeerror.ValidationError{
			Field:  "id",
			Reason: fmt.Sprintf("%q matches %d records", id, len(matches)),
		}
	}
}
