package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"fjacquet/iban-book/internal/logging"
)

// Clipboard receives text copied by the user.
type Clipboard interface {
	SetText(ctx context.Context, text string) error
}

// Sharer hands formatted text to a share target.
type Sharer interface {
	Share(ctx context.Context, text string) error
}

// CommandSink pipes text into an external program such as
// "xclip -selection clipboard" or "pbcopy".
type CommandSink struct {
	Name   string
	Args   []string
	logger logging.Logger
}

// NewCommandSink splits command on whitespace into program and arguments.
func NewCommandSink(command string, logger logging.Logger) (*CommandSink, error) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil, fmt.Errorf("clipboard command is empty")
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &CommandSink{Name: parts[0], Args: parts[1:], logger: logger}, nil
}

// SetText runs the command with text on its standard input.
func (s *CommandSink) SetText(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, s.Name, s.Args...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		s.logger.WithError(err).Error("Clipboard command failed",
			logging.F("command", s.Name),
			logging.F("stderr", strings.TrimSpace(stderr.String())))
		return fmt.Errorf("error running clipboard command %s: %w", s.Name, err)
	}
	s.logger.Debug("Copied to clipboard", logging.F("command", s.Name), logging.F("bytes", len(text)))
	return nil
}

// Share lets a command sink double as a share target.
func (s *CommandSink) Share(ctx context.Context, text string) error {
	return s.SetText(ctx, text)
}

// WriterSink prints text to W, one payload per line block.
type WriterSink struct {
	W io.Writer
}

// SetText prints text followed by a newline.
func (s WriterSink) SetText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.W, text)
	return err
}

// Share prints text the same way SetText does.
func (s WriterSink) Share(ctx context.Context, text string) error {
	return s.SetText(ctx, text)
}

// FileSink writes each shared payload to Path, replacing previous content.
type FileSink struct {
	Path string
}

// Share writes text to Path, creating its directory if needed.
func (s FileSink) Share(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(text+"\n"), 0600); err != nil {
		return fmt.Errorf("error writing share file: %w", err)
	}
	return nil
}

// NewClipboard returns a command sink when command is set, otherwise a writer
// sink over fallback.
func NewClipboard(command string, fallback io.Writer, logger logging.Logger) (Clipboard, error) {
	if strings.TrimSpace(command) == "" {
		return WriterSink{W: fallback}, nil
	}
	return NewCommandSink(command, logger)
}

// NewSharer returns a file sink when path is set, otherwise a writer sink over
// fallback.
func NewSharer(path string, fallback io.Writer) Sharer {
	if path == "" {
		return WriterSink{W: fallback}
	}
	return FileSink{Path: path}
}
