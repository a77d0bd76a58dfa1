package book

import (
	"context"
	"strings"

	"fjacquet/iban-book/internal/logging"
	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/storeerror"
	"fjacquet/iban-book/internal/validation"
)

// Records lists a category. For the reserved category it returns every
// record: listed categories first in list order, then any other stored key
// in name order.
func (b *Book) Records(category string) []models.BankRecord {
	name := b.category(category)
	if name == models.ReservedCategory {
		return b.all()
	}
	return append([]models.BankRecord{}, b.banks[name]...)
}

func (b *Book) all() []models.BankRecord {
	out := []models.BankRecord{}
	for _, g := range b.Groups(models.ReservedCategory) {
		out = append(out, g.Records...)
	}
	return out
}

// Groups is Records keeping the category of each record. A concrete category
// yields a single group; the reserved one yields every non-empty key in the
// order Records uses.
func (b *Book) Groups(category string) []models.Group {
	name := b.category(category)
	if name != models.ReservedCategory {
		return []models.Group{{Category: name, Records: append([]models.BankRecord{}, b.banks[name]...)}}
	}

	var out []models.Group
	seen := make(map[string]bool, len(b.categories))
	add := func(key string) {
		seen[key] = true
		if len(b.banks[key]) > 0 {
			out = append(out, models.Group{Category: key, Records: append([]models.BankRecord{}, b.banks[key]...)})
		}
	}
	for _, key := range b.categories.Concrete() {
		add(key)
	}
	for _, key := range b.banks.Keys() {
		if !seen[key] {
			add(key)
		}
	}
	return out
}

// Find returns the record with id in category.
func (b *Book) Find(category, id string) (models.BankRecord, bool) {
	name := b.category(category)
	if i := indexOf(b.banks[name], id); i >= 0 {
		return b.banks[name][i], true
	}
	return models.BankRecord{}, false
}

// Locate finds id in any category. Used when the caller only knows the ID.
func (b *Book) Locate(id string) (category string, record models.BankRecord, ok bool) {
	for _, key := range b.banks.Keys() {
		if i := indexOf(b.banks[key], id); i >= 0 {
			return key, b.banks[key][i], true
		}
	}
	return "", models.BankRecord{}, false
}

// Search matches query case-insensitively, without regard to locale, against the bank name of every
// stored record, grouped by category. An empty query means "no filter" and
// returns active == false, which is different from an empty result.
func (b *Book) Search(query string) (result map[string][]models.BankRecord, active bool) {
	if query == "" {
		return nil, false
	}
	needle := foldKey(query)
	result = map[string][]models.BankRecord{}
	for _, key := range b.banks.Keys() {
		for _, r := range b.banks[key] {
			if strings.Contains(foldKey(r.BankName), needle) {
				result[key] = append(result[key], r)
			}
		}
	}
	b.logger.Debug("Search", logging.F(logging.FieldQuery, query), logging.F("groups", len(result)))
	return result, true
}

// AddRecord validates r, gives it a new ID and appends it to category,
// creating the category key if needed. The stored record is returned.
func (b *Book) AddRecord(ctx context.Context, category string, r models.BankRecord) (models.BankRecord, error) {
	name, err := b.recordCategory(category, "add records to")
	if err != nil {
		return models.BankRecord{}, err
	}
	if err := validation.ValidateRecord(r); err != nil {
		return models.BankRecord{}, err
	}

	r.ID = b.opts.NewID()
	b.banks[name] = append(b.banks[name], r)

	b.logger.Info("Record added",
		logging.F(logging.FieldCategory, name),
		logging.F(logging.FieldRecordID, r.ID))
	return r, b.saveBanks(ctx)
}

// UpdateRecord replaces the record with id in category, keeping its ID.
func (b *Book) UpdateRecord(ctx context.Context, category, id string, r models.BankRecord) error {
	name, err := b.recordCategory(category, "update records in")
	if err != nil {
		return err
	}
	if err := validation.ValidateRecord(r); err != nil {
		return err
	}

	i := indexOf(b.banks[name], id)
	if i < 0 {
		return &storeerror.NotFoundError{Category: name, ID: id}
	}
	r.ID = id
	b.banks[name][i] = r

	b.logger.Info("Record updated",
		logging.F(logging.FieldCategory, name),
		logging.F(logging.FieldRecordID, id))
	return b.saveBanks(ctx)
}

// DeleteRecord removes the record with id from category. A missing record is
// not an error: removed is false and nothing is written.
func (b *Book) DeleteRecord(ctx context.Context, category, id string) (removed bool, err error) {
	name := b.category(category)
	records := b.banks[name]
	i := indexOf(records, id)
	if i < 0 {
		b.logger.Debug("Delete of unknown record ignored",
			logging.F(logging.FieldCategory, name),
			logging.F(logging.FieldRecordID, id))
		return false, nil
	}

	b.banks[name] = append(records[:i:i], records[i+1:]...)
	b.logger.Info("Record deleted",
		logging.F(logging.FieldCategory, name),
		logging.F(logging.FieldRecordID, id))
	return true, b.saveBanks(ctx)
}

func (b *Book) recordCategory(category, op string) (string, error) {
	name := b.category(category)
	if name == "" {
		return "", &storeerror.ValidationError{Field: "category", Reason: storeerror.ReasonRequired}
	}
	if name == models.ReservedCategory {
		return "", &storeerror.ReservedCategoryError{Name: name, Operation: op}
	}
	return name, nil
}

func indexOf(records []models.BankRecord, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
