package bankcodes

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"fjacquet/iban-book/internal/logging"
	"fjacquet/iban-book/internal/models"

	"gopkg.in/yaml.v3"
)

var codePattern = regexp.MustCompile(`^[0-9]{4}$`)

// directoryFile is the YAML layout of an extension file:
//
//	banks:
//	  "0046":
//	    name: Akbank
//	    logo: banks/0046.png
type directoryFile struct {
	Banks map[string]models.BankInfo `yaml:"banks"`
}

// Directory is a bank-code table: the built-in entries plus whatever an
// extension file adds or overrides.
type Directory struct {
	table map[string]models.BankInfo
}

// NewDirectory returns a directory holding only the built-in table.
func NewDirectory() *Directory {
	return &Directory{table: Builtin()}
}

// LoadDirectory reads an extension file on top of the built-in table. An
// empty path or a missing file yields the built-in table.
func LoadDirectory(path string, logger logging.Logger) (*Directory, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	d := NewDirectory()
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Bank code file not found, using built-in table",
				logging.F(logging.FieldFile, path))
			return d, nil
		}
		return nil, fmt.Errorf("error reading bank code file: %w", err)
	}

	var file directoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing bank code file: %w", err)
	}

	for code, info := range file.Banks {
		if !codePattern.MatchString(code) {
			return nil, fmt.Errorf("invalid bank code %q in %s: want four digits", code, path)
		}
		if info.Name == "" {
			return nil, fmt.Errorf("bank code %s in %s has no name", code, path)
		}
		info.Code = code
		d.table[code] = info
	}

	logger.Debug("Loaded bank codes",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(file.Banks)))
	return d, nil
}

// Lookup resolves the bank of iban.
func (d *Directory) Lookup(iban string) (models.BankInfo, bool) {
	return lookup(d.table, iban)
}

// DisplayName is the name shown for a record: the directory entry when the
// IBAN's bank code is known, the stored bank name otherwise.
func (d *Directory) DisplayName(r models.BankRecord) string {
	if info, ok := d.Lookup(r.IBAN); ok {
		return info.Name
	}
	return r.BankName
}

// Entries lists the table ordered by code.
func (d *Directory) Entries() []models.BankInfo {
	out := make([]models.BankInfo, 0, len(d.table))
	for _, info := range d.table {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
