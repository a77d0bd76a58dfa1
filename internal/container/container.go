// Package container provides dependency injection for iban-book.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"io"
	"os"

	"fjacquet/iban-book/internal/bankcodes"
	"fjacquet/iban-book/internal/book"
	"fjacquet/iban-book/internal/config"
	"fjacquet/iban-book/internal/export"
	"fjacquet/iban-book/internal/kvstore"
	"fjacquet/iban-book/internal/logging"
)

// Container holds all application dependencies and provides methods to access them.
//
// Dependencies are fixed at creation and only reachable through getters. The
// book is the one lazy part: it is read from storage on first use.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     kvstore.Store
	directory *bankcodes.Directory
	book      *book.Book
	loaded    bool
	clipboard export.Clipboard
	sharer    export.Sharer
}

// Option overrides a dependency, mostly for tests.
type Option func(*options)

type options struct {
	logger logging.Logger
	store  kvstore.Store
	out    io.Writer
}

// WithLogger replaces the logrus logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStore replaces the file store.
func WithStore(store kvstore.Store) Option {
	return func(o *options) { o.store = store }
}

// WithOutput sets where the clipboard and share fallbacks print. Defaults to
// stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// NewContainer creates and wires all application dependencies.
// The book is created but not loaded; Book loads it on first use.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	store := o.store
	if store == nil {
		fileStore, err := kvstore.NewFileStore(cfg.Data.Directory, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating store: %w", err)
		}
		logger.Debug("Using file store", logging.F(logging.FieldDirectory, fileStore.Dir))
		store = fileStore
	}

	directory, err := bankcodes.LoadDirectory(cfg.BankCodes.File, logger)
	if err != nil {
		return nil, fmt.Errorf("error loading bank codes: %w", err)
	}

	b := book.New(store, book.Options{
		DefaultCategories: cfg.Categories.Defaults,
		DeletePolicy:      book.DeletePolicy(cfg.Categories.DeletePolicy),
		Logger:            logger,
	})

	clipboard, err := export.NewClipboard(cfg.Export.ClipboardCommand, o.out, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating clipboard: %w", err)
	}
	sharer := export.NewSharer(cfg.Export.ShareFile, o.out)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldPolicy, cfg.Categories.DeletePolicy),
		logging.F("bank_codes", len(directory.Entries())))

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     store,
		directory: directory,
		book:      b,
		clipboard: clipboard,
		sharer:    sharer,
	}, nil
}

// Book returns the record store, loading it from storage the first time.
func (c *Container) Book(ctx context.Context) (*book.Book, error) {
	if !c.loaded {
		if err := c.book.Load(ctx); err != nil {
			return nil, err
		}
		c.loaded = true
	}
	return c.book, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the key-value store backing the book.
func (c *Container) GetStore() kvstore.Store {
	return c.store
}

// GetDirectory returns the bank-code directory.
func (c *Container) GetDirectory() *bankcodes.Directory {
	return c.directory
}

// GetClipboard returns the clipboard sink.
func (c *Container) GetClipboard() export.Clipboard {
	return c.clipboard
}

// GetSharer returns the share sink.
func (c *Container) GetSharer() export.Sharer {
	return c.sharer
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
