package common

import (
	"bytes"
	"testing"

	"fjacquet/iban-book/internal/bankcodes"
	"fjacquet/iban-book/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ali = models.BankRecord{
	ID:          "3f2a9c1e-0000-4000-8000-000000000001",
	AccountName: "Ali",
	BankName:    "Ziraat",
	IBAN:        "TR120006400000011111111111",
}

func TestPrintGroups(t *testing.T) {
	groups := []models.Group{
		{Category: "personal", Records: []models.BankRecord{ali}},
		{Category: "work"},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintGroups(&buf, groups, bankcodes.NewDirectory()))

	out := buf.String()
	assert.Contains(t, out, "[personal] (1)")
	assert.Contains(t, out, "[work] (0)")
	assert.Contains(t, out, "3f2a9c1e")
	assert.Contains(t, out, "İş Bankası", "known code replaces the typed bank name")
	assert.NotContains(t, out, "Ziraat")
}

func TestPrintGroups_WithoutDirectory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintGroups(&buf, []models.Group{{Category: "personal", Records: []models.BankRecord{ali}}}, nil))
	assert.Contains(t, buf.String(), "Ziraat")
}

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	PrintRecord(&buf, "personal", ali, bankcodes.NewDirectory())

	out := buf.String()
	assert.Contains(t, out, "Kategori: personal")
	assert.Contains(t, out, "Banka:    Ziraat")
	assert.Contains(t, out, "Kod:      0064 (İş Bankası)")
	assert.Contains(t, out, "IBAN:     TR120006400000011111111111")
}
