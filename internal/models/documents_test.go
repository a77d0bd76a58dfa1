package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanksDocument_JSONRoundTripKeepsOrder(t *testing.T) {
	doc := BanksDocument{
		"personal": {
			{ID: "1", AccountName: "Ali", BankName: "Ziraat", IBAN: "TR120006400000011111111111"},
			{ID: "2", AccountName: "Ayşe", BankName: "Denizbank", IBAN: "TR330001300000000000000001"},
		},
		"business": {},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var back BanksDocument
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, doc["personal"], back["personal"])
	assert.Empty(t, back["business"])
}

func TestBanksDocument_ReadsLegacyShape(t *testing.T) {
	legacy := `{"personal":[{"bankName":"Ziraat","iban":"TR12 0006 4000 0001 1111 1111 11","accountName":"Ali"}]}`

	var doc BanksDocument
	require.NoError(t, json.Unmarshal([]byte(legacy), &doc))

	require.Len(t, doc["personal"], 1)
	assert.Equal(t, "", doc["personal"][0].ID)
	assert.Equal(t, "Ali", doc["personal"][0].AccountName)
}

func TestBanksDocument_CloneIsDeep(t *testing.T) {
	doc := BanksDocument{"a": {{ID: "1", AccountName: "x"}}}
	c := doc.Clone()
	c["a"][0].AccountName = "changed"

	assert.Equal(t, "x", doc["a"][0].AccountName)
}

func TestBanksDocument_KeysAndCount(t *testing.T) {
	doc := BanksDocument{"b": {{ID: "1"}}, "a": {{ID: "2"}, {ID: "3"}}}
	assert.Equal(t, []string{"a", "b"}, doc.Keys())
	assert.Equal(t, 3, doc.Count())
}

func TestCategoriesDocument(t *testing.T) {
	c := CategoriesDocument{ReservedCategory, "personal", "business"}

	assert.True(t, c.Contains("personal"))
	assert.False(t, c.Contains("Personal"))
	assert.Equal(t, 2, c.Index("business"))
	assert.Equal(t, []string{"personal", "business"}, c.Concrete())
}

func TestBankRecord_EqualAndShortID(t *testing.T) {
	a := BankRecord{ID: "0f8fad5b-d9cb-469f-a165-70867728950e", AccountName: "Ali", BankName: "Ziraat", IBAN: "TR1"}
	b := a
	b.ID = "other"

	assert.True(t, a.Equal(b))
	assert.Equal(t, "0f8fad5b", a.ShortID())
	assert.Equal(t, "other", b.ShortID())
	assert.Len(t, NewRecordID(), 36)
}
