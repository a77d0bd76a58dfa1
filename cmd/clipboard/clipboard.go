// Package clipboard handles the copy and share commands
package clipboard

import (
	"fmt"

	"fjacquet/iban-book/cmd/common"
	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/internal/export"
	"fjacquet/iban-book/internal/models"

	"github.com/spf13/cobra"
)

var (
	copyCategory  string
	copyID        string
	shareCategory string
	shareID       string
)

// Cmd represents the copy command
var Cmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy an IBAN or a whole category to the clipboard",
	Long: `With --id, copy the IBAN of one record. Without it, copy every record of
the category as text blocks separated by a blank line.`,
	Args: cobra.NoArgs,
	RunE: runCopy,
}

// ShareCmd represents the share command
var ShareCmd = &cobra.Command{
	Use:   "share",
	Short: "Share one record as text",
	Long:  `Send the account name, bank and IBAN of a record to the share target.`,
	Args:  cobra.NoArgs,
	RunE:  runShare,
}

func init() {
	Cmd.Flags().StringVarP(&copyCategory, "category", "c", models.ReservedCategory, "Category to copy")
	Cmd.Flags().StringVar(&copyID, "id", "", "Copy only the IBAN of this record")

	ShareCmd.Flags().StringVarP(&shareCategory, "category", "c", "", "Category of the record (default: searched)")
	ShareCmd.Flags().StringVar(&shareID, "id", "", "Record to share (required)")
	_ = ShareCmd.MarkFlagRequired("id")
}

func runCopy(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	b, err := root.Book(ctx)
	if err != nil {
		return root.Fail(cmd, err)
	}

	var text string
	if copyID != "" {
		category := copyCategory
		if category == models.ReservedCategory {
			category = ""
		}
		_, r, err := common.Resolve(b, category, copyID)
		if err != nil {
			return root.Fail(cmd, err)
		}
		text = r.IBAN
	} else {
		text, err = export.FormatRecords(b.Records(copyCategory))
		if err != nil {
			return root.Fail(cmd, err)
		}
	}

	if err := root.GetContainer().GetClipboard().SetText(ctx, text); err != nil {
		return root.Fail(cmd, err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Kopyalandı.")
	return nil
}

func runShare(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	b, err := root.Book(ctx)
	if err != nil {
		return root.Fail(cmd, err)
	}
	_, r, err := common.Resolve(b, shareCategory, shareID)
	if err != nil {
		return root.Fail(cmd, err)
	}
	if err := root.GetContainer().GetSharer().Share(ctx, export.FormatRecord(r)); err != nil {
		return root.Fail(cmd, err)
	}
	return nil
}
