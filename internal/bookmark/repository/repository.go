// Package repository holds the typed store adapters for bookmarks. Every
// backend maps the same five operations onto its storage engine and reports
// "zero rows affected" as ErrNotFound so callers can tell a missing row
// apart from an unreachable store.
package repository

import (
	"context"
	"errors"

	"github.com/bookmarkd/bookmarkd/internal/bookmark"
)

// ErrNotFound is the first-class "no such bookmark" outcome.
var ErrNotFound = errors.New("bookmark not found")

// Repository is the storage capability the service layer depends on.
type Repository interface {
	// GetAll returns every bookmark in the store's natural order.
	GetAll(ctx context.Context) ([]bookmark.Bookmark, error)
	// GetByID returns the bookmark with the given id or ErrNotFound.
	GetByID(ctx context.Context, id string) (*bookmark.Bookmark, error)
	// Insert persists a new bookmark, assigning a fresh id, and returns it.
	Insert(ctx context.Context, b *bookmark.Bookmark) (string, error)
	// PatchByID overwrites the mutable fields of an existing row with the
	// already-merged next entity. The id itself is never changed.
	PatchByID(ctx context.Context, id string, next bookmark.Bookmark) error
	// DeleteByID removes the row or reports ErrNotFound.
	DeleteByID(ctx context.Context, id string) error
}
