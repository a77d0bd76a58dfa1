// Package testutil runs the command tree in-process for command tests.
package testutil

import (
	"bytes"
	"strings"

	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/internal/config"
	"fjacquet/iban-book/internal/container"
	"fjacquet/iban-book/internal/kvstore"
	"fjacquet/iban-book/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Harness runs the command tree in-process against an in-memory store. It is
// meant for command tests.
type Harness struct {
	Store  *kvstore.MemoryStore
	Logger *logging.MockLogger
	Config *config.Config
	// Sink receives clipboard and share output.
	Sink bytes.Buffer

	container *container.Container
}

// NewHarness builds a harness over a store seeded with seed. configure may
// adjust the default configuration before the container is built.
func NewHarness(seed map[string]string, configure func(*config.Config)) (*Harness, error) {
	cfg := &config.Config{
		Log:        config.LogConfig{Level: "error", Format: "text"},
		Categories: config.CategoriesConfig{Defaults: []string{"personal"}, DeletePolicy: config.DeletePolicyUnfiled},
		Export:     config.ExportConfig{CSVDelimiter: ","},
	}
	if configure != nil {
		configure(cfg)
	}

	h := &Harness{
		Store:  kvstore.NewMemoryStore(seed),
		Logger: logging.NewMockLogger(),
		Config: cfg,
	}
	c, err := container.NewContainer(cfg,
		container.WithStore(h.Store),
		container.WithLogger(h.Logger),
		container.WithOutput(&h.Sink))
	if err != nil {
		return nil, err
	}
	h.container = c
	return h, nil
}

// Run executes the root command with args, feeding stdin, and returns what
// was written to stdout and stderr.
func (h *Harness) Run(stdin string, args ...string) (stdout, stderr string, err error) {
	root.AppConfig = h.Config
	root.AppContainer = h.container
	resetFlags(root.Cmd)

	var out, errOut bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&errOut)
	root.Cmd.SetIn(strings.NewReader(stdin))
	root.Cmd.SetArgs(args)

	err = root.Cmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags puts every flag of the tree back to its default so values do not
// leak from one run into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
