// Package account handles the bank record commands
package account

import (
	"fmt"

	"fjacquet/iban-book/cmd/common"
	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/internal/book"
	"fjacquet/iban-book/internal/models"

	"github.com/spf13/cobra"
)

type recordFlags struct {
	category string
	name     string
	bank     string
	iban     string
}

var (
	addFlags  recordFlags
	editFlags recordFlags

	rmCategory string
	rmYes      bool

	listCategory string
	showCategory string
)

// Cmd represents the account command
var Cmd = &cobra.Command{
	Use:   "account",
	Short: "Manage bank account records",
	Long:  `Add, edit, remove, list and show the bank account records of a category.`,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a bank account record",
	Long: `Add a record to a category. When --bank is omitted the bank name is taken
from the IBAN's bank code if it is known.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a bank account record",
	Long:  `Replace fields of a record. Omitted fields keep their current value.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a bank account record",
	Long:  `Remove a record after confirmation. --yes skips the prompt.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bank account records",
	Long:  `List the records of a category, or of every category with "tümü".`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one bank account record",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	addCmd.Flags().StringVarP(&addFlags.category, "category", "c", "", "Category to add the record to (required)")
	addCmd.Flags().StringVarP(&addFlags.name, "name", "n", "", "Account name (required)")
	addCmd.Flags().StringVarP(&addFlags.bank, "bank", "b", "", "Bank name")
	addCmd.Flags().StringVarP(&addFlags.iban, "iban", "i", "", "IBAN, TR followed by 24 digits (required)")
	_ = addCmd.MarkFlagRequired("category")

	editCmd.Flags().StringVarP(&editFlags.category, "category", "c", "", "Category of the record (default: searched)")
	editCmd.Flags().StringVarP(&editFlags.name, "name", "n", "", "New account name")
	editCmd.Flags().StringVarP(&editFlags.bank, "bank", "b", "", "New bank name")
	editCmd.Flags().StringVarP(&editFlags.iban, "iban", "i", "", "New IBAN")

	rmCmd.Flags().StringVarP(&rmCategory, "category", "c", "", "Category of the record (default: searched)")
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Do not ask for confirmation")

	listCmd.Flags().StringVarP(&listCategory, "category", "c", models.ReservedCategory, "Category to list")
	showCmd.Flags().StringVarP(&showCategory, "category", "c", "", "Category of the record (default: searched)")

	Cmd.AddCommand(addCmd, editCmd, rmCmd, listCmd, showCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	b, err := root.Book(root.Context(cmd))
	if err != nil {
		return root.Fail(cmd, err)
	}

	r := models.BankRecord{AccountName: addFlags.name, BankName: addFlags.bank, IBAN: addFlags.iban}
	if r.BankName == "" {
		if info, ok := root.GetContainer().GetDirectory().Lookup(r.IBAN); ok {
			r.BankName = info.Name
		}
	}

	added, err := b.AddRecord(root.Context(cmd), addFlags.category, r)
	if err != nil {
		return root.Fail(cmd, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Kaydedildi: %s (%s)\n", added.AccountName, added.ID)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	b, err := root.Book(root.Context(cmd))
	if err != nil {
		return root.Fail(cmd, err)
	}
	category, current, err := common.Resolve(b, editFlags.category, args[0])
	if err != nil {
		return root.Fail(cmd, err)
	}

	updated := current
	if editFlags.name != "" {
		updated.AccountName = editFlags.name
	}
	if editFlags.bank != "" {
		updated.BankName = editFlags.bank
	}
	if editFlags.iban != "" {
		updated.IBAN = editFlags.iban
	}

	if err := b.UpdateRecord(root.Context(cmd), category, current.ID, updated); err != nil {
		return root.Fail(cmd, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Güncellendi: %s\n", updated.AccountName)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	b, err := root.Book(ctx)
	if err != nil {
		return root.Fail(cmd, err)
	}
	category, r, err := common.Resolve(b, rmCategory, args[0])
	if err != nil {
		return root.Fail(cmd, err)
	}

	session := book.NewSession(b)
	if _, err := session.Handle(ctx, book.RequestDelete{Category: category, ID: r.ID}); err != nil {
		return root.Fail(cmd, err)
	}

	question := fmt.Sprintf("%s hesabı silinsin mi?", r.AccountName)
	if !rmYes && !root.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), question) {
		if _, err := session.Handle(ctx, book.CancelDelete{}); err != nil {
			return root.Fail(cmd, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "İptal edildi.")
		return nil
	}

	if _, err := session.Handle(ctx, book.ConfirmDelete{}); err != nil {
		return root.Fail(cmd, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Silindi: %s\n", r.AccountName)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	b, err := root.Book(root.Context(cmd))
	if err != nil {
		return root.Fail(cmd, err)
	}
	groups := b.Groups(listCategory)
	if len(groups) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Kayıt yok.")
		return nil
	}
	return common.PrintGroups(cmd.OutOrStdout(), groups, root.GetContainer().GetDirectory())
}

func runShow(cmd *cobra.Command, args []string) error {
	b, err := root.Book(root.Context(cmd))
	if err != nil {
		return root.Fail(cmd, err)
	}
	category, r, err := common.Resolve(b, showCategory, args[0])
	if err != nil {
		return root.Fail(cmd, err)
	}
	common.PrintRecord(cmd.OutOrStdout(), category, r, root.GetContainer().GetDirectory())
	return nil
}
