// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/iban-book/internal/bankcodes"
	"fjacquet/iban-book/internal/models"
)

// PrintGroups writes one table per group: short ID, account name, bank and
// IBAN. The bank column shows the directory name when the IBAN's bank code is
// known.
func PrintGroups(w io.Writer, groups []models.Group, dir *bankcodes.Directory) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "[%s] (%d)\n", g.Category, len(g.Records))
		for _, r := range g.Records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ShortID(), r.AccountName, bankName(r, dir), r.IBAN)
		}
	}
	return tw.Flush()
}

// PrintRecord writes every field of r on its own line.
func PrintRecord(w io.Writer, category string, r models.BankRecord, dir *bankcodes.Directory) {
	fmt.Fprintf(w, "ID:       %s\n", r.ID)
	fmt.Fprintf(w, "Kategori: %s\n", category)
	fmt.Fprintf(w, "Hesap:    %s\n", r.AccountName)
	fmt.Fprintf(w, "Banka:    %s\n", r.BankName)
	if dir != nil {
		if info, ok := dir.Lookup(r.IBAN); ok {
			fmt.Fprintf(w, "Kod:      %s (%s)\n", info.Code, info.Name)
		}
	}
	fmt.Fprintf(w, "IBAN:     %s\n", r.IBAN)
}

func bankName(r models.BankRecord, dir *bankcodes.Directory) string {
	if dir == nil {
		return r.BankName
	}
	return dir.DisplayName(r)
}
