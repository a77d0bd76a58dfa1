package book

import (
	"context"

	"fjacquet/iban-book/internal/logging"
	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/storeerror"
)

// Categories lists the category names, reserved one first.
func (b *Book) Categories() []string {
	return append([]string{}, b.categories...)
}

// Policy reports the configured category delete policy.
func (b *Book) Policy() DeletePolicy {
	return b.opts.DeletePolicy
}

// AddCategory lists a new category and makes sure it has a banks entry.
// Records already stored under that key (from an earlier removal with the
// unfiled policy) are kept and become listed again.
func (b *Book) AddCategory(ctx context.Context, name string) (string, error) {
	n := b.category(name)
	if n == "" {
		return "", &storeerror.EmptyNameError{}
	}
	if b.categories.Contains(n) {
		return "", &storeerror.DuplicateError{Name: n}
	}

	b.categories = append(b.categories, n)
	if _, ok := b.banks[n]; !ok {
		b.banks[n] = []models.BankRecord{}
	}
	if err := b.saveCategories(ctx); err != nil {
		return n, err
	}

	b.logger.Info("Category added", logging.F(logging.FieldCategory, n))
	return n, b.saveBanks(ctx)
}

// RenameCategory moves every record of oldName to newName and replaces the
// name in place in the category list.
func (b *Book) RenameCategory(ctx context.Context, oldName, newName string) (string, error) {
	from := b.category(oldName)
	if from == models.ReservedCategory {
		return "", &storeerror.ReservedCategoryError{Name: from, Operation: "rename"}
	}
	i := b.categories.Index(from)
	if i < 0 {
		return "", &storeerror.NotFoundError{Category: from}
	}

	to := b.category(newName)
	if to == "" {
		return "", &storeerror.EmptyNameError{}
	}
	if to == from {
		return to, nil
	}
	if b.categories.Contains(to) {
		return "", &storeerror.DuplicateError{Name: to}
	}

	moved := b.banks[from]
	b.banks[to] = append(b.banks[to], moved...)
	delete(b.banks, from)
	b.categories[i] = to

	b.logger.Info("Category renamed",
		logging.F(logging.FieldCategory, to),
		logging.F("from", from),
		logging.F(logging.FieldCount, len(moved)))

	if err := b.saveBanks(ctx); err != nil {
		return to, err
	}
	return to, b.saveCategories(ctx)
}

// CanRemoveCategory runs the removal checks without changing anything.
func (b *Book) CanRemoveCategory(name string) (string, error) {
	n := b.category(name)
	if n == models.ReservedCategory {
		return n, &storeerror.ReservedCategoryError{Name: n, Operation: "remove"}
	}
	if !b.categories.Contains(n) {
		return n, &storeerror.NotFoundError{Category: n}
	}
	if len(b.categories.Concrete()) <= 1 {
		return n, &storeerror.MinimumCategoryError{Name: n}
	}
	return n, nil
}

// RemoveCategory unlists a category. affected is the number of records that
// were stored under it: left in place with PolicyUnfiled, deleted with
// PolicyCascade.
func (b *Book) RemoveCategory(ctx context.Context, name string) (affected int, err error) {
	n, err := b.CanRemoveCategory(name)
	if err != nil {
		return 0, err
	}

	i := b.categories.Index(n)
	b.categories = append(b.categories[:i:i], b.categories[i+1:]...)
	affected = len(b.banks[n])

	b.logger.Info("Category removed",
		logging.F(logging.FieldCategory, n),
		logging.F(logging.FieldPolicy, string(b.opts.DeletePolicy)),
		logging.F(logging.FieldCount, affected))

	if err := b.saveCategories(ctx); err != nil {
		return affected, err
	}
	if b.opts.DeletePolicy == PolicyCascade {
		delete(b.banks, n)
		return affected, b.saveBanks(ctx)
	}
	return affected, nil
}

// Unfiled returns the non-empty record lists stored under keys that are no
// longer listed as categories.
func (b *Book) Unfiled() map[string][]models.BankRecord {
	out := map[string][]models.BankRecord{}
	for key, records := range b.banks {
		if len(records) == 0 || b.categories.Contains(key) {
			continue
		}
		out[key] = append([]models.BankRecord{}, records...)
	}
	return out
}
