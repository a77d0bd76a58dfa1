// Package iban handles the IBAN utility commands
package iban

import (
	"fmt"

	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/internal/bankcodes"
	"fjacquet/iban-book/internal/logging"
	"fjacquet/iban-book/internal/storeerror"
	"fjacquet/iban-book/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the iban command
var Cmd = &cobra.Command{
	Use:   "iban",
	Short: "Validate, format and look up Turkish IBANs",
}

var validateCmd = &cobra.Command{
	Use:   "validate <iban>",
	Short: "Check that an IBAN is TR followed by 24 digits",
	Long: `Check the IBAN format used when saving records. The mod-97 check digits
are reported as well but never block saving.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var formatCmd = &cobra.Command{
	Use:   "format <text>",
	Short: "Normalize IBAN input and group it in blocks of four",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), validation.FormatIBANInput(args[0]))
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <iban>",
	Short: "Show the bank of an IBAN's bank code",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the known bank codes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range directory().Entries() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", info.Code, info.Name)
		}
	},
}

func init() {
	Cmd.AddCommand(validateCmd, formatCmd, lookupCmd, banksCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if !validation.IsValidIBAN(args[0]) {
		return root.Fail(cmd, &storeerror.ValidationError{Field: "iban", Reason: "malformed"})
	}
	stripped := validation.StripIBAN(args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "Geçerli: %s\n", validation.GroupIBAN(stripped))
	if !validation.ChecksumValid(stripped) {
		fmt.Fprintln(cmd.OutOrStdout(), "Uyarı: kontrol basamakları tutmuyor.")
	}
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	code, ok := bankcodes.BankCode(args[0])
	if !ok {
		return root.Fail(cmd, &storeerror.ValidationError{Field: "iban", Reason: "too short for a bank code"})
	}
	info, ok := directory().Lookup(args[0])
	root.GetLogger().Debug("Bank code lookup",
		logging.F(logging.FieldBankCode, code),
		logging.F("known", ok))
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\tbilinmeyen banka\n", code)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", info.Code, info.Name, info.Logo)
	return nil
}

func directory() *bankcodes.Directory {
	if c := root.GetContainer(); c != nil {
		return c.GetDirectory()
	}
	return bankcodes.NewDirectory()
}
