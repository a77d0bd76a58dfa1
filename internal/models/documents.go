package models

import (
	"sort"
)

// BanksDocument maps a category name to its ordered records. It is stored as
// a single JSON value under BanksKey.
type BanksDocument map[string][]BankRecord

// CategoriesDocument is the ordered list of category names stored under
// CategoriesKey. The reserved name is kept first.
type CategoriesDocument []string

// Clone returns a deep copy.
func (d BanksDocument) Clone() BanksDocument {
	out := make(BanksDocument, len(d))
	for k, v := range d {
		out[k] = append([]BankRecord{}, v...)
	}
	return out
}

// Keys returns the category keys sorted by name.
func (d BanksDocument) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of records across every key.
func (d BanksDocument) Count() int {
	n := 0
	for _, v := range d {
		n += len(v)
	}
	return n
}

// Contains reports whether name is listed.
func (c CategoriesDocument) Contains(name string) bool {
	return c.Index(name) >= 0
}

// Index returns the position of name or -1.
func (c CategoriesDocument) Index(name string) int {
	for i, n := range c {
		if n == name {
			return i
		}
	}
	return -1
}

// Concrete returns the listed names without the reserved one.
func (c CategoriesDocument) Concrete() []string {
	out := make([]string, 0, len(c))
	for _, n := range c {
		if n != ReservedCategory {
			out = append(out, n)
		}
	}
	return out
}

// Group is the records of one category key, used where the origin of each
// record must survive a flattened view.
type Group struct {
	Category string
	Records  []BankRecord
}
