package bookmark

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Bookmark is the canonical persisted entity. The id is assigned by the
// store adapter on insert and never changed afterwards. Rating is numeric
// in the model even when clients transport it as a string.
type Bookmark struct {
	ID          string  `json:"id" gorm:"primaryKey" bson:"id"`
	Title       string  `json:"title" gorm:"not null" bson:"title"`
	URL         string  `json:"url" gorm:"not null" bson:"url"`
	Description string  `json:"description" bson:"description"`
	Rating      float64 `json:"rating" gorm:"not null" bson:"rating"`
}

// RatingInput carries a rating across the wire. Clients send ratings both as
// JSON numbers and as numeric strings ("3"), so decoding never fails here;
// the validator decides afterwards whether the value is usable. An empty or
// null value counts as not supplied at all.
type RatingInput struct {
	present bool
	numeric bool
	value   float64
}

func (r *RatingInput) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*r = RatingInput{present: true}
			return nil
		}
		*r = RatingInput{present: true, numeric: true, value: f}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*r = RatingInput{present: true}
		return nil
	}
	*r = RatingInput{present: true, numeric: true, value: f}
	return nil
}

func (r RatingInput) MarshalJSON() ([]byte, error) {
	if !r.numeric {
		return []byte("null"), nil
	}
	return json.Marshal(r.value)
}

// Present reports whether the client supplied the field with a non-empty value.
func (r RatingInput) Present() bool { return r.present }

// Number returns the coerced numeric value and whether coercion succeeded.
func (r RatingInput) Number() (float64, bool) { return r.value, r.numeric }

// CreateBookmarkRequest is the POST payload.
type CreateBookmarkRequest struct {
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Description string      `json:"description"`
	Rating      RatingInput `json:"rating"`
}

// UpdateBookmarkRequest is the PATCH payload. Pointer fields distinguish
// "absent" from "set to empty"; unknown fields are dropped by the decoder.
type UpdateBookmarkRequest struct {
	Title       *string     `json:"title"`
	URL         *string     `json:"url"`
	Description *string     `json:"description"`
	Rating      RatingInput `json:"rating"`
}
