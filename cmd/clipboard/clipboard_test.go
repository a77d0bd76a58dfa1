package clipboard_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/iban-book/cmd/clipboard"
	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/internal/config"
	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Cmd.AddCommand(clipboard.Cmd, clipboard.ShareCmd)
}

func newHarness(t *testing.T, configure func(*config.Config)) *testutil.Harness {
	t.Helper()
	h, err := testutil.NewHarness(map[string]string{
		models.CategoriesKey: `["tümü","personal","work"]`,
		models.BanksKey: `{
			"personal":[
				{"id":"p1","accountName":"Ali","bankName":"Ziraat","iban":"TR12 0006 4000 0001 1111 1111 11"},
				{"id":"p2","accountName":"Veli","bankName":"Denizbank","iban":"TR330001300000000000000001"}
			],
			"work":[]
		}`,
	}, configure)
	require.NoError(t, err)
	return h
}

func TestCopyCommand_Metadata(t *testing.T) {
	assert.Equal(t, "copy", clipboard.Cmd.Use)
	assert.Equal(t, "share", clipboard.ShareCmd.Use)

	category := clipboard.Cmd.Flags().Lookup("category")
	require.NotNil(t, category)
	assert.Equal(t, "c", category.Shorthand)
	assert.Equal(t, models.ReservedCategory, category.DefValue)
	assert.NotNil(t, clipboard.ShareCmd.Flags().Lookup("id"))
}

func TestCopy_SingleIBAN(t *testing.T) {
	h := newHarness(t, nil)

	_, stderr, err := h.Run("", "copy", "--id", "p2")
	require.NoError(t, err)
	assert.Equal(t, "TR330001300000000000000001\n", h.Sink.String())
	assert.Contains(t, stderr, "Kopyalandı.")
}

func TestCopy_Category(t *testing.T) {
	h := newHarness(t, nil)

	_, _, err := h.Run("", "copy", "-c", "personal")
	require.NoError(t, err)
	assert.Equal(t,
		"Ali\nBanka: Ziraat\nIBAN: TR12 0006 4000 0001 1111 1111 11\n\n"+
			"Veli\nBanka: Denizbank\nIBAN: TR330001300000000000000001\n",
		h.Sink.String())
}

func TestCopy_EmptyCategory(t *testing.T) {
	h := newHarness(t, nil)

	_, stderr, err := h.Run("", "copy", "-c", "work")
	require.Error(t, err)
	assert.Contains(t, stderr, "Kopyalanacak hesap bulunamadı")
	assert.Empty(t, h.Sink.String())
}

func TestCopy_UnknownID(t *testing.T) {
	h := newHarness(t, nil)

	_, stderr, err := h.Run("", "copy", "--id", "nope")
	require.Error(t, err)
	assert.Contains(t, stderr, "Kayıt bulunamadı.")
}

func TestShare(t *testing.T) {
	h := newHarness(t, nil)

	_, _, err := h.Run("", "share", "--id", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Ali\nBanka: Ziraat\nIBAN: TR12 0006 4000 0001 1111 1111 11\n", h.Sink.String())
}

func TestShare_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "share.txt")
	h := newHarness(t, func(c *config.Config) { c.Export.ShareFile = path })

	_, _, err := h.Run("", "share", "--id", "p2", "-c", "personal")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Veli\nBanka: Denizbank\nIBAN: TR330001300000000000000001\n", string(data))
}

func TestShare_RequiresID(t *testing.T) {
	h := newHarness(t, nil)

	_, _, err := h.Run("", "share")
	assert.Error(t, err)
}
