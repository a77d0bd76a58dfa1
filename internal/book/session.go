package book

import (
	"context"

	"fjacquet/iban-book/internal/logging"
	"fjacquet/iban-book/internal/storeerror"
)

// Command is a user intent fed to a Session.
type Command interface {
	command()
}

// RequestDelete asks for a deletion to be confirmed. With an ID it targets a
// record, without one the category itself.
type RequestDelete struct {
	Category string
	ID       string
}

// ConfirmDelete carries out the pending request.
type ConfirmDelete struct{}

// CancelDelete drops the pending request.
type CancelDelete struct{}

func (RequestDelete) command() {}
func (ConfirmDelete) command() {}
func (CancelDelete) command()  {}

// Outcome describes what a command did.
type Outcome struct {
	// Pending is set after a request that now awaits confirmation.
	Pending *RequestDelete
	// Removed reports whether a record was deleted on confirmation.
	Removed bool
	// Affected is the record count of a removed category.
	Affected int
	// Cancelled is set when a pending request was dropped.
	Cancelled bool
}

// Session serializes the request/confirm/cancel dialog of a delete on top of
// a Book. It holds at most one pending request; a new request replaces it.
type Session struct {
	book    *Book
	pending *RequestDelete
}

// NewSession starts a session over b.
func NewSession(b *Book) *Session {
	return &Session{book: b}
}

// Pending returns the request awaiting confirmation.
func (s *Session) Pending() (RequestDelete, bool) {
	if s.pending == nil {
		return RequestDelete{}, false
	}
	return *s.pending, true
}

// Handle applies cmd.
//
// A category request is checked up front so the reserved and last-category
// refusals surface before any confirmation is asked for. A record request is
// not: deleting a record that vanished is a no-op.
func (s *Session) Handle(ctx context.Context, cmd Command) (Outcome, error) {
	switch c := cmd.(type) {
	case RequestDelete:
		c.Category = s.book.category(c.Category)
		if c.ID == "" {
			if _, err := s.book.CanRemoveCategory(c.Category); err != nil {
				return Outcome{}, err
			}
		}
		s.pending = &c
		req := c
		return Outcome{Pending: &req}, nil

	case ConfirmDelete:
		if s.pending == nil {
			return Outcome{}, storeerror.ErrNoPendingRequest
		}
		req := *s.pending
		s.pending = nil
		if req.ID == "" {
			affected, err := s.book.RemoveCategory(ctx, req.Category)
			return Outcome{Affected: affected}, err
		}
		removed, err := s.book.DeleteRecord(ctx, req.Category, req.ID)
		return Outcome{Removed: removed}, err

	case CancelDelete:
		if s.pending == nil {
			return Outcome{}, storeerror.ErrNoPendingRequest
		}
		s.book.logger.Debug("Delete cancelled",
			logging.F(logging.FieldCategory, s.pending.Category),
			logging.F(logging.FieldRecordID, s.pending.ID))
		s.pending = nil
		return Outcome{Cancelled: true}, nil
	}
	return Outcome{}, nil
}
