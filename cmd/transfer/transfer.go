// Package transfer handles the CSV export and import commands
package transfer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/internal/export"
	"fjacquet/iban-book/internal/logging"
	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/storeerror"

	"github.com/spf13/cobra"
)

var (
	exportCategory string
	exportOutput   string

	importInput    string
	importCategory string
)

// ExportCmd represents the export command
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records",
}

// ImportCmd represents the import command
var ImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import records",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export records to CSV",
	Long: `Write the records of a category (default: every category) as CSV with a
category column. The delimiter comes from export.csv_delimiter.`,
	Args: cobra.NoArgs,
	RunE: runExportCSV,
}

var importCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Import records from CSV",
	Long: `Add every row of a CSV file written by "export csv". Rows go to their own
category column unless --category is set. Invalid rows are reported and
skipped.`,
	Args: cobra.NoArgs,
	RunE: runImportCSV,
}

func init() {
	exportCSVCmd.Flags().StringVarP(&exportCategory, "category", "c", models.ReservedCategory, "Category to export")
	exportCSVCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "Output file, - for stdout")
	ExportCmd.AddCommand(exportCSVCmd)

	importCSVCmd.Flags().StringVarP(&importInput, "input", "i", "", "CSV file to read (required)")
	importCSVCmd.Flags().StringVarP(&importCategory, "category", "c", "", "Put every row in this category")
	_ = importCSVCmd.MarkFlagRequired("input")
	ImportCmd.AddCommand(importCSVCmd)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	b, err := root.Book(root.Context(cmd))
	if err != nil {
		return root.Fail(cmd, err)
	}
	c := root.GetContainer()
	logger := c.GetLogger()

	dir := c.GetDirectory()
	rows := export.Rows(b.Groups(exportCategory), func(iban string) string {
		if info, ok := dir.Lookup(iban); ok {
			return info.Name
		}
		return ""
	})
	if len(rows) == 0 {
		return root.Fail(cmd, storeerror.ErrNothingToExport)
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "-" && exportOutput != "" {
		if err := os.MkdirAll(filepath.Dir(exportOutput), 0750); err != nil {
			return root.Fail(cmd, fmt.Errorf("error creating directory: %w", err))
		}
		file, err := os.Create(exportOutput)
		if err != nil {
			return root.Fail(cmd, fmt.Errorf("error creating CSV file: %w", err))
		}
		defer func() {
			if err := file.Close(); err != nil {
				logger.WithError(err).Warn("Failed to close file")
			}
		}()
		w = file
	}

	if err := export.WriteCSV(w, rows, c.GetConfig().Delimiter()); err != nil {
		return root.Fail(cmd, err)
	}
	logger.Info("Exported records to CSV",
		logging.F(logging.FieldFile, exportOutput),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}

func runImportCSV(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	b, err := root.Book(ctx)
	if err != nil {
		return root.Fail(cmd, err)
	}
	c := root.GetContainer()
	logger := c.GetLogger()

	file, err := os.Open(importInput)
	if err != nil {
		return root.Fail(cmd, fmt.Errorf("error opening CSV file: %w", err))
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := export.ReadCSV(file, c.GetConfig().Delimiter())
	if err != nil {
		return root.Fail(cmd, err)
	}

	added, skipped := 0, 0
	for i, row := range rows {
		category := row.Category
		if importCategory != "" {
			category = importCategory
		}
		if _, err := b.AddRecord(ctx, category, row.Record()); err != nil {
			var pe *storeerror.PersistenceError
			if errors.As(err, &pe) {
				return root.Fail(cmd, err)
			}
			skipped++
			fmt.Fprintf(cmd.ErrOrStderr(), "Satır %d atlandı: %s\n", i+2, storeerror.UserMessage(err).Body)
			continue
		}
		added++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d kayıt eklendi, %d satır atlandı.\n", added, skipped)
	logger.Info("Imported records from CSV",
		logging.F(logging.FieldFile, importInput),
		logging.F(logging.FieldCount, added),
		logging.F("skipped", skipped))
	return nil
}
