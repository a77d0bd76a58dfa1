package search_test

import (
	"testing"

	"fjacquet/iban-book/cmd/root"
	"fjacquet/iban-book/cmd/search"
	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Cmd.AddCommand(search.Cmd)
}

func newHarness(t *testing.T) *testutil.Harness {
	t.Helper()
	h, err := testutil.NewHarness(map[string]string{
		models.CategoriesKey: `["tümü","personal","work"]`,
		models.BanksKey: `{
			"personal":[{"id":"p1","accountName":"Ali","bankName":"Ziraat Bankası","iban":"TR330009900000000000000001"}],
			"work":[{"id":"w1","accountName":"Ofis","bankName":"İş Bankası","iban":"TR330009800000000000000001"}]
		}`,
	}, nil)
	require.NoError(t, err)
	return h
}

func TestSearchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "search <query>", search.Cmd.Use)
	assert.Contains(t, search.Cmd.Short, "bank name")
	assert.NotNil(t, search.Cmd.RunE)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contains []string
		excludes []string
	}{
		{"case insensitive", "ZİRAAT", []string{"[personal] (1)", "Ali"}, []string{"Ofis"}},
		{"turkish dotted capital", "iş", []string{"[work] (1)", "Ofis"}, []string{"Ali"}},
		{"shared substring", "bankası", []string{"[personal] (1)", "[work] (1)"}, nil},
		{"no match", "garanti", []string{"Sonuç bulunamadı."}, nil},
		{"empty query", "", []string{"Arama sorgusu boş."}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			out, _, err := h.Run("", "search", tt.query)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
