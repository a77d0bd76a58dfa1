package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/iban-book/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV fields unless configured otherwise.
const DefaultDelimiter = ','

// Row is one CSV line.
type Row struct {
	Category    string `csv:"category"`
	AccountName string `csv:"account_name"`
	BankName    string `csv:"bank_name"`
	IBAN        string `csv:"iban"`
	// KnownBank is the directory name for the IBAN's bank code, empty when
	// the code is unknown.
	KnownBank string `csv:"known_bank"`
}

// Record converts the row back into a record without an ID.
func (r Row) Record() models.BankRecord {
	return models.BankRecord{AccountName: r.AccountName, BankName: r.BankName, IBAN: r.IBAN}
}

// Rows flattens groups in order. known may be nil.
func Rows(groups []models.Group, known func(iban string) string) []Row {
	var rows []Row
	for _, g := range groups {
		for _, r := range g.Records {
			row := Row{
				Category:    g.Category,
				AccountName: r.AccountName,
				BankName:    r.BankName,
				IBAN:        r.IBAN,
			}
			if known != nil {
				row.KnownBank = known(r.IBAN)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteCSV writes rows with a header line.
func WriteCSV(w io.Writer, rows []Row, delimiter rune) error {
	if rows == nil {
		rows = []Row{}
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ReadCSV parses rows written by WriteCSV. Only the header names matter, so
// the known_bank column may be absent.
func ReadCSV(r io.Reader, delimiter rune) ([]Row, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delimiter
	csvReader.TrimLeadingSpace = true

	var rows []Row
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}
