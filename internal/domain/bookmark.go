package domain

import (
	"fmt"
	"time"
)

// Rating bounds, inclusive.
const (
	RatingMin = 1
	RatingMax = 5
)

// Bookmark is a persisted bookmark record. The id is assigned by the server on
// creation and never changes afterwards.
type Bookmark struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// Sanitized returns a copy of the bookmark safe to send to clients: free-text
// fields are run through the HTML sanitizer. Stored data is never modified.
func (b Bookmark) Sanitized() Bookmark {
	b.Title = SanitizeHTML(b.Title)
	b.URL = SanitizeHTML(b.URL)
	b.Description = SanitizeHTML(b.Description)
	return b
}

// ValidationError carries the message of the first validation rule an input
// failed. Handlers return it verbatim in the 400 response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var errRatingRange = &ValidationError{Message: "'rating' must be a number between 1 and 5"}

// CreateBookmarkInput is the request schema for creating a bookmark. Pointer
// fields make missing keys distinguishable from zero values. Unknown keys
// (including a client-supplied id) are ignored.
type CreateBookmarkInput struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Rating      *int    `json:"rating"`
}

// Validate checks the fields in fixed order (title, url, description, rating)
// and reports the first missing one, then the rating range.
func (in *CreateBookmarkInput) Validate() error {
	fields := []struct {
		name    string
		present bool
	}{
		{"title", hasString(in.Title)},
		{"url", hasString(in.URL)},
		{"description", hasString(in.Description)},
		{"rating", in.Rating != nil},
	}
	for _, f := range fields {
		if !f.present {
			return &ValidationError{Message: fmt.Sprintf("Missing '%s' in request body", f.name)}
		}
	}
	if !validRating(*in.Rating) {
		return errRatingRange
	}
	return nil
}

// PatchBookmarkInput is the request schema for a partial update. Any subset of
// the four content fields may be supplied.
type PatchBookmarkInput struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Rating      *int    `json:"rating"`
}

// Validate requires at least one updatable field and, when rating is supplied,
// checks its range.
func (in *PatchBookmarkInput) Validate() error {
	if !hasString(in.Title) && !hasString(in.URL) && !hasString(in.Description) && in.Rating == nil {
		return &ValidationError{Message: "Request body must contain either 'title', 'url', 'description' or 'rating'"}
	}
	if in.Rating != nil && !validRating(*in.Rating) {
		return errRatingRange
	}
	return nil
}

// Apply merges the supplied fields over b. Unsupplied fields keep their prior
// values.
func (in *PatchBookmarkInput) Apply(b *Bookmark) {
	if hasString(in.Title) {
		b.Title = *in.Title
	}
	if hasString(in.URL) {
		b.URL = *in.URL
	}
	if hasString(in.Description) {
		b.Description = *in.Description
	}
	if in.Rating != nil {
		b.Rating = *in.Rating
	}
}

func validRating(r int) bool { return r >= RatingMin && r <= RatingMax }

// An empty string counts as absent, same as a missing key.
func hasString(s *string) bool { return s != nil && *s != "" }
