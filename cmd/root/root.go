// Package root contains the root command for the application
package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/iban-book/internal/book"
	"fjacquet/iban-book/internal/config"
	"fjacquet/iban-book/internal/container"
	"fjacquet/iban-book/internal/logging"
	"fjacquet/iban-book/internal/storeerror"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	DataDir    string
}

var (
	// Log is the shared logger instance used before the container exists
	Log = logrus.New()

	// AppConfig is the configuration loaded in PersistentPreRunE
	AppConfig *config.Config

	// AppContainer holds the wired dependencies of the running command
	AppContainer *container.Container

	// Flags holds the persistent flag values
	Flags = GlobalFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "iban-book",
		Short: "A local address book for Turkish IBANs, grouped by category.",
		Long: `iban-book keeps bank account records (account name, bank name, IBAN)
in named categories on the local disk. Records can be searched by bank name,
copied to the clipboard, shared as text and exported to CSV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Welcome to iban-book!")
			fmt.Fprintln(cmd.OutOrStdout(), "Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if AppContainer != nil {
				return nil
			}
			return Setup(cmd.OutOrStdout())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.Warnf("Failed to close container: %v", err)
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "Config file (default $HOME/.iban-book/config.yaml)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&Flags.DataDir, "data-dir", "", "Directory holding the stored documents")
}

// Setup loads the configuration, applies flag overrides and builds the
// container. out receives clipboard and share fallbacks.
func Setup(out io.Writer, opts ...container.Option) error {
	cfg, err := config.InitializeConfig(Flags.ConfigFile)
	if err != nil {
		return err
	}
	if Flags.LogLevel != "" {
		cfg.Log.Level = Flags.LogLevel
	}
	if Flags.DataDir != "" {
		cfg.Data.Directory = Flags.DataDir
	}

	c, err := container.NewContainer(cfg, append([]container.Option{container.WithOutput(out)}, opts...)...)
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	AppConfig = cfg
	AppContainer = c
	return nil
}

// GetContainer returns the running container, nil before Setup.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the loaded configuration, nil before Setup.
func GetConfig() *config.Config {
	return AppConfig
}

// GetLogger returns the container logger, or an adapter over Log before
// Setup.
func GetLogger() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Book returns the loaded book of the running container.
func Book(ctx context.Context) (*book.Book, error) {
	if AppContainer == nil {
		return nil, errors.New("application not initialized")
	}
	return AppContainer.Book(ctx)
}

// Context returns the command context, or Background when the command runs
// outside Execute.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// reportedError marks an error whose notice was already shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Fail prints the user notice for err and returns it wrapped so the process
// exits non-zero without printing it twice.
func Fail(cmd *cobra.Command, err error) error {
	notice := storeerror.UserMessage(err)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", notice.Title, notice.Body)
	GetLogger().WithError(err).Debug("Command failed", logging.F("command", cmd.CommandPath()))
	return &reportedError{err: err}
}

// Reported tells whether err went through Fail.
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// Confirm asks question on out and reads a yes/no answer from in. Anything
// but "e", "evet", "y" or "yes" counts as no.
func Confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [e/H]: ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "e", "evet", "y", "yes":
		return true
	}
	return false
}
