// Package kvstore provides the string key-value persistence the book is
// written to.
package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"fjacquet/iban-book/internal/logging"
)

// Store is the persistence contract: whole string values addressed by key.
// There is no transaction spanning two keys.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

var keyPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// FileStore keeps each key in its own JSON file inside Dir.
type FileStore struct {
	Dir    string
	logger logging.Logger
}

// DefaultDirectory is $HOME/.config/iban-book.
func DefaultDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "iban-book"), nil
}

// NewFileStore creates a store rooted at dir, or at DefaultDirectory when dir
// is empty. The directory is created on first write.
func NewFileStore(dir string, logger logging.Logger) (*FileStore, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if dir == "" {
		def, err := DefaultDirectory()
		if err != nil {
			return nil, err
		}
		dir = def
	}
	return &FileStore{Dir: dir, logger: logger}, nil
}

// Path returns the file backing key.
func (s *FileStore) Path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

// Get reads key. A missing file is reported as found == false.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	path, err := s.Path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Key not present", logging.F(logging.FieldKey, key))
			return "", false, nil
		}
		return "", false, fmt.Errorf("error reading %s: %w", path, err)
	}
	return string(data), true, nil
}

// Set replaces key. The value goes to a temporary file first and is renamed
// over the target so a failed write leaves the previous value intact.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.Path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.Dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error closing %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error replacing %s: %w", path, err)
	}

	s.logger.Debug("Saved key",
		logging.F(logging.FieldKey, key),
		logging.F(logging.FieldFile, path))
	return nil
}
