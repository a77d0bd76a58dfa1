// Package main provides the entry point for the iban-book CLI application.
package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/iban-book/cmd/account"
	"fjacquet/iban-book/cmd/category"
	"fjacquet/iban-book/cmd/clipboard"
	"fjacquet/iban-book/cmd/iban"
	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/cmd/search"
	"fjacquet/iban-book/cmd/transfer"
	"fjacquet/iban-book/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load .env silently first (no logging yet)
	config.LoadEnv(nil)

	// 2. Configure the bootstrap logger used before the container exists
	root.Log.SetLevel(logLevelFromEnv())

	// 3. Initialize root command flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(account.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(search.Cmd)
	root.Cmd.AddCommand(clipboard.Cmd)
	root.Cmd.AddCommand(clipboard.ShareCmd)
	root.Cmd.AddCommand(transfer.ExportCmd)
	root.Cmd.AddCommand(transfer.ImportCmd)
	root.Cmd.AddCommand(iban.Cmd)
}

// logLevelFromEnv reads IBANBOOK_LOG_LEVEL, defaulting to warn.
func logLevelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv(config.EnvPrefix + "_LOG_LEVEL")))
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		if !root.Reported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
