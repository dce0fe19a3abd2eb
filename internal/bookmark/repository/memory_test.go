package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookmarkd/bookmarkd/internal/bookmark"
)

func TestMemoryRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	b := &bookmark.Bookmark{Title: "Test title", URL: "https://www.test.com", Rating: 3}
	id, err := r.Insert(ctx, b)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Test title", got.Title)
	require.Equal(t, 3.0, got.Rating)

	list, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	next := *got
	next.Title = "patched"
	require.NoError(t, r.PatchByID(ctx, id, next))
	got2, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "patched", got2.Title)
	require.Equal(t, id, got2.ID)

	require.NoError(t, r.DeleteByID(ctx, id))
	_, err = r.GetByID(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_NotFoundOutcomes(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	_, err := r.GetByID(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, r.PatchByID(ctx, "nope", bookmark.Bookmark{}), ErrNotFound)
	require.ErrorIs(t, r.DeleteByID(ctx, "nope"), ErrNotFound)

	list, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestMemoryRepo_GetAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	for _, title := range []string{"first", "second", "third"} {
		_, err := r.Insert(ctx, &bookmark.Bookmark{Title: title, URL: "https://x.com", Rating: 1})
		require.NoError(t, err)
	}

	list, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "first", list[0].Title)
	require.Equal(t, "second", list[1].Title)
	require.Equal(t, "third", list[2].Title)
}

func TestMemoryRepo_PatchCannotChangeID(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	id, err := r.Insert(ctx, &bookmark.Bookmark{Title: "t", URL: "https://x.com", Rating: 1})
	require.NoError(t, err)

	require.NoError(t, r.PatchByID(ctx, id, bookmark.Bookmark{ID: "forged", Title: "t2", URL: "https://x.com", Rating: 1}))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	_, err = r.GetByID(ctx, "forged")
	require.ErrorIs(t, err, ErrNotFound)
}
