package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookmarkd/bookmarkd/internal/bookmark"
	"github.com/bookmarkd/bookmarkd/internal/bookmark/repository"
)

// ErrNotFound is returned when the addressed bookmark does not exist.
var ErrNotFound = errors.New("bookmark does not exist")

// Service defines the bookmark operations used by the handler layer.
// Every returned entity has already been sanitized, so callers can echo
// text fields back to a browser without further care — including rows
// that were inserted before a sanitization rule existed.
type Service interface {
	List(ctx context.Context) ([]bookmark.Bookmark, error)
	Get(ctx context.Context, id string) (*bookmark.Bookmark, error)
	Create(ctx context.Context, req bookmark.CreateBookmarkRequest) (*bookmark.Bookmark, error)
	Update(ctx context.Context, id string, req bookmark.UpdateBookmarkRequest) error
	Delete(ctx context.Context, id string) error
}

// New returns a Service over the given repository with the given rating
// bounds. Bounds normally come from configuration; the zero value falls
// back to the public [0,5] contract.
func New(repo repository.Repository, bounds bookmark.RatingBounds) Service {
	if bounds == (bookmark.RatingBounds{}) {
		bounds = bookmark.DefaultRatingBounds
	}
	return &bookmarkService{repo: repo, bounds: bounds}
}

type bookmarkService struct {
	repo   repository.Repository
	bounds bookmark.RatingBounds
}

func (s *bookmarkService) List(ctx context.Context) ([]bookmark.Bookmark, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	out := make([]bookmark.Bookmark, 0, len(items))
	for _, b := range items {
		out = append(out, bookmark.SanitizeBookmark(b))
	}
	return out, nil
}

func (s *bookmarkService) Get(ctx context.Context, id string) (*bookmark.Bookmark, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get bookmark %s: %w", id, err)
	}
	clean := bookmark.SanitizeBookmark(*b)
	return &clean, nil
}

func (s *bookmarkService) Create(ctx context.Context, req bookmark.CreateBookmarkRequest) (*bookmark.Bookmark, error) {
	if err := bookmark.ValidateCreate(req, s.bounds); err != nil {
		return nil, err
	}
	rating, _ := req.Rating.Number()
	b := bookmark.Bookmark{
		Title:       bookmark.SanitizeText(req.Title),
		URL:         bookmark.SanitizeText(req.URL),
		Description: bookmark.SanitizeText(req.Description),
		Rating:      rating,
	}
	if _, err := s.repo.Insert(ctx, &b); err != nil {
		return nil, fmt.Errorf("insert bookmark: %w", err)
	}
	clean := bookmark.SanitizeBookmark(b)
	return &clean, nil
}

func (s *bookmarkService) Update(ctx context.Context, id string, req bookmark.UpdateBookmarkRequest) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get bookmark %s: %w", id, err)
	}
	patch, err := bookmark.ValidatePatch(req, s.bounds)
	if err != nil {
		return err
	}
	next := bookmark.Merge(*existing, patch)
	if err := s.repo.PatchByID(ctx, id, next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("patch bookmark %s: %w", id, err)
	}
	return nil
}

func (s *bookmarkService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete bookmark %s: %w", id, err)
	}
	return nil
}
