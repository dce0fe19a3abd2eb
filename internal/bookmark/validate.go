package bookmark

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorKind classifies client input failures.
type ErrorKind string

const (
	MissingField  ErrorKind = "missing_field"
	InvalidRating ErrorKind = "invalid_rating"
	InvalidURL    ErrorKind = "invalid_url"
	EmptyPatch    ErrorKind = "empty_patch"
)

// ValidationError is a terminal client input error. Message is what the
// caller sees in the response body.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RatingBounds is the inclusive range a rating must fall into.
type RatingBounds struct {
	Min float64
	Max float64
}

// DefaultRatingBounds matches the public contract of the API.
var DefaultRatingBounds = RatingBounds{Min: 0, Max: 5}

var validate = validator.New()

// ValidateCreate checks a creation payload. Rules run in a fixed order and
// the first failure wins, so error messages are deterministic:
// required title, url, rating; then the rating range; then url syntax.
func ValidateCreate(req CreateBookmarkRequest, bounds RatingBounds) error {
	if err := validate.Var(req.Title, "required"); err != nil {
		return missingField("title")
	}
	if err := validate.Var(req.URL, "required"); err != nil {
		return missingField("url")
	}
	if !req.Rating.Present() {
		return missingField("rating")
	}
	if err := validateRating(req.Rating, bounds); err != nil {
		return err
	}
	return validateURL(req.URL)
}

// ValidatePatch builds a sparse patch from the recognized fields that the
// caller actually supplied. Fields that are present get the same per-field
// constraints as creation; zero recognized fields is an error.
func ValidatePatch(req UpdateBookmarkRequest, bounds RatingBounds) (Patch, error) {
	var p Patch
	if req.Title != nil && *req.Title != "" {
		p.Title = req.Title
	}
	if req.URL != nil && *req.URL != "" {
		if err := validateURL(*req.URL); err != nil {
			return Patch{}, err
		}
		p.URL = req.URL
	}
	if req.Description != nil && *req.Description != "" {
		p.Description = req.Description
	}
	if req.Rating.Present() {
		if err := validateRating(req.Rating, bounds); err != nil {
			return Patch{}, err
		}
		v, _ := req.Rating.Number()
		p.Rating = &v
	}
	if p.IsEmpty() {
		return Patch{}, &ValidationError{
			Kind:    EmptyPatch,
			Message: "Request body must include at least one of 'title', 'url', 'description' and 'rating'",
		}
	}
	return p, nil
}

func validateRating(r RatingInput, bounds RatingBounds) error {
	v, ok := r.Number()
	if !ok || v != v || v < bounds.Min || v > bounds.Max {
		return &ValidationError{
			Kind:    InvalidRating,
			Field:   "rating",
			Message: fmt.Sprintf("rating must be between %g and %g", bounds.Min, bounds.Max),
		}
	}
	return nil
}

func validateURL(raw string) error {
	// http_url requires an absolute http(s) URL with a host
	if err := validate.Var(raw, "http_url"); err != nil {
		return &ValidationError{Kind: InvalidURL, Field: "url", Message: "url must be valid"}
	}
	return nil
}

func missingField(field string) error {
	return &ValidationError{
		Kind:    MissingField,
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}
