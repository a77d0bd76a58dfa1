// Package book owns the in-memory snapshot of the banks and categories
// documents and every mutation applied to them.
//
// Each mutation is one read-modify-write of the snapshot followed by a full
// rewrite of the touched document(s). A failed write is logged and returned
// as a *storeerror.PersistenceError; the snapshot is not rolled back, so
// memory and storage may diverge until the next successful write.
package book

import (
	"context"
	"encoding/json"
	"strings"

	"fjacquet/iban-book/internal/kvstore"
	"fjacquet/iban-book/internal/logging"
	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/storeerror"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeletePolicy decides what happens to the records of a removed category.
type DeletePolicy string

const (
	// PolicyUnfiled keeps the records in the banks document; they stay
	// visible through Unfiled and the reserved "all" view.
	PolicyUnfiled DeletePolicy = "unfiled"
	// PolicyCascade deletes the records together with the category.
	PolicyCascade DeletePolicy = "cascade"
)

// DefaultCategories seeds a fresh book.
var DefaultCategories = []string{"personal"}

// Options configures a Book. Zero values fall back to the documented
// defaults.
type Options struct {
	// DefaultCategories are listed on a fresh install (no categories
	// document yet). Defaults to DefaultCategories.
	DefaultCategories []string
	// DeletePolicy defaults to PolicyUnfiled.
	DeletePolicy DeletePolicy
	// NewID generates record IDs. Defaults to models.NewRecordID.
	NewID func() string
	// Logger defaults to a discarding logger.
	Logger logging.Logger
}

// Book is the record and category store.
type Book struct {
	store  kvstore.Store
	opts   Options
	logger logging.Logger

	banks      models.BanksDocument
	categories models.CategoriesDocument
}

// New creates a book over store. Call Load before use.
func New(store kvstore.Store, opts Options) *Book {
	if opts.DefaultCategories == nil {
		opts.DefaultCategories = DefaultCategories
	}
	if opts.DeletePolicy == "" {
		opts.DeletePolicy = PolicyUnfiled
	}
	if opts.NewID == nil {
		opts.NewID = models.NewRecordID
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewDiscardLogger()
	}
	return &Book{
		store:      store,
		opts:       opts,
		logger:     opts.Logger,
		banks:      models.BanksDocument{},
		categories: models.CategoriesDocument{models.ReservedCategory},
	}
}

// NormalizeCategory trims and lower-cases a category name. A dotted capital
// İ becomes a plain i, so "İŞ" gives "iş".
func NormalizeCategory(name string) string {
	lower := cases.Lower(language.Und).String(strings.TrimSpace(name))
	return strings.ReplaceAll(lower, "i\u0307", "i")
}

// foldKey is the comparison key for case-insensitive matching. It does not
// depend on a locale: I, ı, İ and i all fold to i.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'ı', 'İ':
			return 'i'
		case '\u0307':
			return -1
		}
		return r
	}, cases.Fold().String(s))
}

// category resolves user input to the listed or stored name it matches
// case-insensitively. Unknown names come back normalized.
func (b *Book) category(name string) string {
	n := NormalizeCategory(name)
	if n == "" || b.categories.Contains(n) {
		return n
	}
	if _, ok := b.banks[n]; ok {
		return n
	}

	key := foldKey(n)
	for _, c := range b.categories {
		if foldKey(c) == key {
			return c
		}
	}
	for _, k := range b.banks.Keys() {
		if foldKey(k) == key {
			return k
		}
	}
	return n
}

// Load replaces the snapshot with the persisted documents.
//
// Without a categories document the book starts with the reserved category
// plus the configured defaults. Category names are normalized, the reserved
// one is moved first and every listed category gets a banks entry. Records
// without an ID (written before IDs existed) receive one, and the banks
// document is rewritten so the IDs stay stable across runs.
func (b *Book) Load(ctx context.Context) error {
	banks := models.BanksDocument{}
	if raw, found, err := b.store.Get(ctx, models.BanksKey); err != nil {
		return b.persistenceFailure(models.BanksKey, "read", err)
	} else if found {
		if err := json.Unmarshal([]byte(raw), &banks); err != nil {
			return b.persistenceFailure(models.BanksKey, "decode", err)
		}
		if banks == nil {
			banks = models.BanksDocument{}
		}
	}

	var names []string
	raw, found, err := b.store.Get(ctx, models.CategoriesKey)
	if err != nil {
		return b.persistenceFailure(models.CategoriesKey, "read", err)
	}
	if found {
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			return b.persistenceFailure(models.CategoriesKey, "decode", err)
		}
	} else {
		names = b.opts.DefaultCategories
	}

	b.categories = normalizeCategories(names)
	b.banks = banks
	for _, name := range b.categories.Concrete() {
		if _, ok := b.banks[name]; !ok {
			b.banks[name] = []models.BankRecord{}
		}
	}

	assigned := 0
	for key, records := range b.banks {
		for i := range records {
			if records[i].ID == "" {
				records[i].ID = b.opts.NewID()
				assigned++
			}
		}
		b.banks[key] = records
	}

	b.logger.Debug("Book loaded",
		logging.F(logging.FieldCount, b.banks.Count()),
		logging.F("categories", len(b.categories)))

	if assigned > 0 {
		b.logger.Info("Assigned IDs to stored records", logging.F(logging.FieldCount, assigned))
		return b.saveBanks(ctx)
	}
	return nil
}

func normalizeCategories(names []string) models.CategoriesDocument {
	out := models.CategoriesDocument{models.ReservedCategory}
	seen := map[string]bool{foldKey(models.ReservedCategory): true}
	for _, n := range names {
		n = NormalizeCategory(n)
		if n == "" || seen[foldKey(n)] {
			continue
		}
		seen[foldKey(n)] = true
		out = append(out, n)
	}
	return out
}

func (b *Book) saveBanks(ctx context.Context) error {
	return b.save(ctx, models.BanksKey, b.banks)
}

func (b *Book) saveCategories(ctx context.Context) error {
	return b.save(ctx, models.CategoriesKey, b.categories)
}

func (b *Book) save(ctx context.Context, key string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return b.persistenceFailure(key, "encode", err)
	}
	if err := b.store.Set(ctx, key, string(data)); err != nil {
		return b.persistenceFailure(key, "write", err)
	}
	return nil
}

func (b *Book) persistenceFailure(key, op string, err error) error {
	b.logger.WithError(err).Error("Persistence failure",
		logging.F(logging.FieldKey, key),
		logging.F(logging.FieldOperation, op))
	return &storeerror.PersistenceError{Key: key, Op: op, Err: err}
}

// Snapshot returns deep copies of both documents.
func (b *Book) Snapshot() (models.BanksDocument, models.CategoriesDocument) {
	return b.banks.Clone(), append(models.CategoriesDocument{}, b.categories...)
}
