// Package search handles the bank name search command
package search

import (
	"fmt"
	"sort"

	"fjacquet/iban-book/cmd/common"
	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the search command
var Cmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search records by bank name",
	Long: `Search every category for records whose bank name contains the query,
ignoring case. Results are grouped by category.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	b, err := root.Book(root.Context(cmd))
	if err != nil {
		return root.Fail(cmd, err)
	}

	result, active := b.Search(args[0])
	if !active {
		fmt.Fprintln(cmd.OutOrStdout(), "Arama sorgusu boş.")
		return nil
	}
	if len(result) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Sonuç bulunamadı.")
		return nil
	}

	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	groups := make([]models.Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, models.Group{Category: k, Records: result[k]})
	}
	return common.PrintGroups(cmd.OutOrStdout(), groups, root.GetContainer().GetDirectory())
}
