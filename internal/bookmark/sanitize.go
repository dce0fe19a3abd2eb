package bookmark

import (
	"github.com/microcosm-cc/bluemonday"
)

// A single shared policy so every egress path neutralizes text the same way:
// script elements and inline event handlers are removed entirely, benign
// formatting tags (strong, em, img with a safe src, ...) pass through.
var sanitizePolicy = bluemonday.UGCPolicy()

// SanitizeText neutralizes HTML-significant input in a single text field.
// It never fails; unusable markup degrades to inert output. Applying it
// twice yields the same result as applying it once.
func SanitizeText(s string) string {
	return sanitizePolicy.Sanitize(s)
}

// SanitizeBookmark returns a copy of b with every text field neutralized.
// ID and Rating are typed (identifier, number) and are never run through
// text sanitization.
func SanitizeBookmark(b Bookmark) Bookmark {
	b.Title = SanitizeText(b.Title)
	b.URL = SanitizeText(b.URL)
	b.Description = SanitizeText(b.Description)
	return b
}
