package book

import (
	"context"
	"errors"
	"testing"

	"fjacquet/iban-book/internal/models"
	"fjacquet/iban-book/internal/storeerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_RecordDeleteConfirmed(t *testing.T) {
	b, _ := newTestBook(t, nil, Options{})
	ctx := context.Background()
	added, err := b.AddRecord(ctx, "personal", rec("Ali", "Ziraat", ibanIs))
	require.NoError(t, err)

	s := NewSession(b)
	out, err := s.Handle(ctx, RequestDelete{Category: "Personal", ID: added.ID})
	require.NoError(t, err)
	require.NotNil(t, out.Pending)
	assert.Equal(t, "personal", out.Pending.Category)
	assert.Len(t, b.Records("personal"), 1, "request alone deletes nothing")

	pending, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, added.ID, pending.ID)

	out, err = s.Handle(ctx, ConfirmDelete{})
	require.NoError(t, err)
	assert.True(t, out.Removed)
	assert.Empty(t, b.Records("personal"))

	_, ok = s.Pending()
	assert.False(t, ok)
}

func TestSession_Cancel(t *testing.T) {
	b, store := newTestBook(t, map[string]string{
		models.CategoriesKey: `["tümü","personal","work"]`,
	}, Options{})
	ctx := context.Background()
	s := NewSession(b)

	_, err := s.Handle(ctx, RequestDelete{Category: "work"})
	require.NoError(t, err)

	out, err := s.Handle(ctx, CancelDelete{})
	require.NoError(t, err)
	assert.True(t, out.Cancelled)
	assert.Equal(t, []string{"tümü", "personal", "work"}, b.Categories())
	assert.Equal(t, 0, store.Calls(models.CategoriesKey))

	_, err = s.Handle(ctx, ConfirmDelete{})
	assert.ErrorIs(t, err, storeerror.ErrNoPendingRequest)
}

func TestSession_CategoryConfirmed(t *testing.T) {
	b, _ := newTestBook(t, map[string]string{
		models.CategoriesKey: `["tümü","personal","work"]`,
	}, Options{DeletePolicy: PolicyCascade})
	ctx := context.Background()
	_, err := b.AddRecord(ctx, "work", rec("Şirket", "İş Bankası", ibanIs))
	require.NoError(t, err)

	s := NewSession(b)
	_, err = s.Handle(ctx, RequestDelete{Category: "work"})
	require.NoError(t, err)

	out, err := s.Handle(ctx, ConfirmDelete{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Affected)
	assert.Equal(t, []string{"tümü", "personal"}, b.Categories())
}

func TestSession_RequestRefusedUpFront(t *testing.T) {
	tests := []struct {
		name     string
		category string
		target   interface{}
	}{
		{"reserved", "Tümü", new(*storeerror.ReservedCategoryError)},
		{"last category", "personal", new(*storeerror.MinimumCategoryError)},
		{"unknown", "ghost", new(*storeerror.NotFoundError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBook(t, nil, Options{})
			s := NewSession(b)

			_, err := s.Handle(context.Background(), RequestDelete{Category: tt.category})
			require.Error(t, err)
			assert.True(t, errors.As(err, tt.target))
			_, ok := s.Pending()
			assert.False(t, ok)
		})
	}
}

func TestSession_NewRequestReplacesPending(t *testing.T) {
	b, _ := newTestBook(t, nil, Options{})
	ctx := context.Background()
	first, err := b.AddRecord(ctx, "personal", rec("Ali", "Ziraat", ibanIs))
	require.NoError(t, err)
	second, err := b.AddRecord(ctx, "personal", rec("Veli", "Denizbank", ibanDeniz))
	require.NoError(t, err)

	s := NewSession(b)
	_, err = s.Handle(ctx, RequestDelete{Category: "personal", ID: first.ID})
	require.NoError(t, err)
	_, err = s.Handle(ctx, RequestDelete{Category: "personal", ID: second.ID})
	require.NoError(t, err)

	_, err = s.Handle(ctx, ConfirmDelete{})
	require.NoError(t, err)

	remaining := b.Records("personal")
	require.Len(t, remaining, 1)
	assert.Equal(t, first.ID, remaining[0].ID)
}

func TestSession_ConfirmVanishedRecord(t *testing.T) {
	b, _ := newTestBook(t, nil, Options{})
	ctx := context.Background()
	s := NewSession(b)

	_, err := s.Handle(ctx, RequestDelete{Category: "personal", ID: "gone"})
	require.NoError(t, err)

	out, err := s.Handle(ctx, ConfirmDelete{})
	assert.NoError(t, err)
	assert.False(t, out.Removed)
}

func TestSession_CancelWithoutRequest(t *testing.T) {
	b, _ := newTestBook(t, nil, Options{})

	_, err := NewSession(b).Handle(context.Background(), CancelDelete{})
	assert.ErrorIs(t, err, storeerror.ErrNoPendingRequest)
}
