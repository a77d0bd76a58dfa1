// Package category handles the category commands
package category

import (
	"fmt"
	"sort"

	"fjacquet/iban-book/cmd/common"
	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/internal/book"
	"fjacquet/iban-book/internal/models"

	"github.com/spf13/cobra"
)

var rmYes bool

// Cmd represents the category command
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
	Long: `Add, rename, remove and list categories. The "tümü" category shows every
record and cannot be changed.`,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var renameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a category and move its records",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a category",
	Long: `Remove a category after confirmation. Depending on categories.delete_policy
its records are kept as unfiled or deleted with it.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their record counts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var unfiledCmd = &cobra.Command{
	Use:   "unfiled",
	Short: "List records left behind by removed categories",
	Args:  cobra.NoArgs,
	RunE:  runUnfiled,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Do not ask for confirmation")
	Cmd.AddCommand(addCmd, renameCmd, rmCmd, listCmd, unfiledCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	b, err := root.Book(root.Context(cmd))
	if err != nil {
		return root.Fail(cmd, err)
	}
	name, err := b.AddCategory(root.Context(cmd), args[0])
	if err != nil {
		return root.Fail(cmd, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Kategori eklendi: %s\n", name)
	return nil
}

func runRename(cmd *cobra.Command, args []string) error {
	b, err := root.Book(root.Context(cmd))
	if err != nil {
		return root.Fail(cmd, err)
	}
	name, err := b.RenameCategory(root.Context(cmd), args[0], args[1])
	if err != nil {
		return root.Fail(cmd, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Kategori güncellendi: %s\n", name)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	b, err := root.Book(ctx)
	if err != nil {
		return root.Fail(cmd, err)
	}

	session := book.NewSession(b)
	out, err := session.Handle(ctx, book.RequestDelete{Category: args[0]})
	if err != nil {
		return root.Fail(cmd, err)
	}
	name := out.Pending.Category

	question := fmt.Sprintf("%s kategorisi silinsin mi? (%d kayıt)", name, len(b.Records(name)))
	if !rmYes && !root.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), question) {
		if _, err := session.Handle(ctx, book.CancelDelete{}); err != nil {
			return root.Fail(cmd, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "İptal edildi.")
		return nil
	}

	out, err = session.Handle(ctx, book.ConfirmDelete{})
	if err != nil {
		return root.Fail(cmd, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Kategori silindi: %s\n", name)
	if out.Affected > 0 {
		if b.Policy() == book.PolicyCascade {
			fmt.Fprintf(cmd.OutOrStdout(), "%d kayıt silindi.\n", out.Affected)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%d kayıt dosyalanmamış olarak saklandı.\n", out.Affected)
		}
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	b, err := root.Book(root.Context(cmd))
	if err != nil {
		return root.Fail(cmd, err)
	}
	for _, name := range b.Categories() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", name, len(b.Records(name)))
	}
	return nil
}

func runUnfiled(cmd *cobra.Command, args []string) error {
	b, err := root.Book(root.Context(cmd))
	if err != nil {
		return root.Fail(cmd, err)
	}
	unfiled := b.Unfiled()
	if len(unfiled) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Dosyalanmamış kayıt yok.")
		return nil
	}

	keys := make([]string, 0, len(unfiled))
	for k := range unfiled {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	groups := make([]models.Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, models.Group{Category: k, Records: unfiled[k]})
	}
	return common.PrintGroups(cmd.OutOrStdout(), groups, root.GetContainer().GetDirectory())
}
