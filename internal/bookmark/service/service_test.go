package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookmarkd/bookmarkd/internal/bookmark"
	"github.com/bookmarkd/bookmarkd/internal/bookmark/repository"
)

func decodeCreate(t *testing.T, body string) bookmark.CreateBookmarkRequest {
	t.Helper()
	var req bookmark.CreateBookmarkRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func decodeUpdate(t *testing.T, body string) bookmark.UpdateBookmarkRequest {
	t.Helper()
	var req bookmark.UpdateBookmarkRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestService_CreateAssignsIDAndCoercesRating(t *testing.T) {
	ctx := context.Background()
	svc := New(repository.NewMemoryRepo(), bookmark.DefaultRatingBounds)

	created, err := svc.Create(ctx, decodeCreate(t, `{"title":"Test title","url":"https://www.test.com","rating":"3"}`))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, 3.0, created.Rating)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestService_CreateRejectsInvalidPayloadWithoutPersisting(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	svc := New(repo, bookmark.DefaultRatingBounds)

	for _, body := range []string{
		`{"url":"https://a.com","rating":3}`,
		`{"title":"t","url":"https://a.com","rating":-5}`,
		`{"title":"t","url":"ajogijasogi","rating":3}`,
	} {
		_, err := svc.Create(ctx, decodeCreate(t, body))
		var verr *bookmark.ValidationError
		require.ErrorAs(t, err, &verr, "body %s", body)
	}

	list, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestService_GetSanitizesHistoricalRows(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	// a row inserted before any sanitization rule existed
	id, err := repo.Insert(ctx, &bookmark.Bookmark{
		Title:  `Bad script <script>alert("xss");</script>`,
		URL:    "https://www.badtest.com",
		Rating: 2,
	})
	require.NoError(t, err)

	svc := New(repo, bookmark.DefaultRatingBounds)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.NotContains(t, got.Title, "<script")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotContains(t, list[0].Title, "<script")
}

func TestService_NotFoundNormalized(t *testing.T) {
	ctx := context.Background()
	svc := New(repository.NewMemoryRepo(), bookmark.DefaultRatingBounds)

	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
	require.ErrorIs(t, svc.Update(ctx, "missing", decodeUpdate(t, `{"title":"x"}`)), ErrNotFound)
}

func TestService_UpdateMergesSparsePatch(t *testing.T) {
	ctx := context.Background()
	svc := New(repository.NewMemoryRepo(), bookmark.DefaultRatingBounds)

	created, err := svc.Create(ctx, decodeCreate(t, `{"title":"Old","url":"https://old.com","description":"keep me","rating":4}`))
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, created.ID, decodeUpdate(t, `{"title":"Updated Title"}`)))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Updated Title", got.Title)
	require.Equal(t, "https://old.com", got.URL)
	require.Equal(t, "keep me", got.Description)
	require.Equal(t, 4.0, got.Rating)
	require.Equal(t, created.ID, got.ID)
}

func TestService_UpdateRejectsEmptyPatch(t *testing.T) {
	ctx := context.Background()
	svc := New(repository.NewMemoryRepo(), bookmark.DefaultRatingBounds)

	created, err := svc.Create(ctx, decodeCreate(t, `{"title":"t","url":"https://a.com","rating":1}`))
	require.NoError(t, err)

	err = svc.Update(ctx, created.ID, decodeUpdate(t, `{"unknown":"field"}`))
	var verr *bookmark.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, bookmark.EmptyPatch, verr.Kind)

	// existence wins over patch validation: a missing id is 404 territory
	err = svc.Update(ctx, "missing", decodeUpdate(t, `{}`))
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestService_DeleteIsTerminal(t *testing.T) {
	ctx := context.Background()
	svc := New(repository.NewMemoryRepo(), bookmark.DefaultRatingBounds)

	created, err := svc.Create(ctx, decodeCreate(t, `{"title":"t","url":"https://a.com","rating":1}`))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
	require.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}
