package bookmark

// Patch is a sparse update: nil fields were not supplied by the caller and
// must not be interpreted as "set to empty".
type Patch struct {
	Title       *string
	URL         *string
	Description *string
	Rating      *float64
}

// IsEmpty reports whether the patch touches no field at all.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.URL == nil && p.Description == nil && p.Rating == nil
}

// Merge combines an existing bookmark with a sparse patch into the next
// version of the entity. Fields absent from the patch keep their stored
// value; the id is never altered. Merge has no side effects, persisting
// the result is the store adapter's job.
func Merge(existing Bookmark, p Patch) Bookmark {
	next := existing
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.URL != nil {
		next.URL = *p.URL
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Rating != nil {
		next.Rating = *p.Rating
	}
	return next
}
