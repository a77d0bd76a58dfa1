package testutil

import (
	"fmt"
	"testing"

	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/internal/config"
	"fjacquet/iban-book/internal/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var echoName string

var echoCmd = &cobra.Command{
	Use: "echo",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := root.Book(root.Context(cmd))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d", echoName, len(b.Categories()))
		return nil
	},
}

func init() {
	echoCmd.Flags().StringVar(&echoName, "name", "none", "")
	root.Cmd.AddCommand(echoCmd)
}

func TestHarness_RunResetsFlags(t *testing.T) {
	h, err := NewHarness(map[string]string{
		models.CategoriesKey: `["tümü","personal","work"]`,
	}, nil)
	require.NoError(t, err)

	out, _, err := h.Run("", "echo", "--name", "first")
	require.NoError(t, err)
	assert.Equal(t, "first 3", out)

	out, _, err = h.Run("", "echo")
	require.NoError(t, err)
	assert.Equal(t, "none 3", out)
}

func TestNewHarness_Configure(t *testing.T) {
	h, err := NewHarness(nil, func(cfg *config.Config) {
		cfg.Categories.DeletePolicy = config.DeletePolicyCascade
	})
	require.NoError(t, err)
	assert.Equal(t, config.DeletePolicyCascade, h.Config.Categories.DeletePolicy)
	assert.Same(t, h.Config, h.container.GetConfig())
}
