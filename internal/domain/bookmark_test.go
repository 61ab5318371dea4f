package domain

import "testing"

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreateBookmarkInputValidate(t *testing.T) {
	valid := func() CreateBookmarkInput {
		return CreateBookmarkInput{
			Title:       strPtr("Go blog"),
			URL:         strPtr("https://go.dev/blog"),
			Description: strPtr("The official Go blog"),
			Rating:      intPtr(5),
		}
	}

	tests := []struct {
		name    string
		mutate  func(in *CreateBookmarkInput)
		wantMsg string
	}{
		{
			name:   "all fields present",
			mutate: func(in *CreateBookmarkInput) {},
		},
		{
			name:    "missing title",
			mutate:  func(in *CreateBookmarkInput) { in.Title = nil },
			wantMsg: "Missing 'title' in request body",
		},
		{
			name:    "empty title counts as missing",
			mutate:  func(in *CreateBookmarkInput) { in.Title = strPtr("") },
			wantMsg: "Missing 'title' in request body",
		},
		{
			name:    "missing url",
			mutate:  func(in *CreateBookmarkInput) { in.URL = nil },
			wantMsg: "Missing 'url' in request body",
		},
		{
			name:    "missing description",
			mutate:  func(in *CreateBookmarkInput) { in.Description = nil },
			wantMsg: "Missing 'description' in request body",
		},
		{
			name:    "missing rating",
			mutate:  func(in *CreateBookmarkInput) { in.Rating = nil },
			wantMsg: "Missing 'rating' in request body",
		},
		{
			name: "first missing field wins",
			mutate: func(in *CreateBookmarkInput) {
				in.URL = nil
				in.Rating = nil
			},
			wantMsg: "Missing 'url' in request body",
		},
		{
			name:    "rating below range",
			mutate:  func(in *CreateBookmarkInput) { in.Rating = intPtr(0) },
			wantMsg: "'rating' must be a number between 1 and 5",
		},
		{
			name:    "rating above range",
			mutate:  func(in *CreateBookmarkInput) { in.Rating = intPtr(6) },
			wantMsg: "'rating' must be a number between 1 and 5",
		},
		{
			name:    "negative rating",
			mutate:  func(in *CreateBookmarkInput) { in.Rating = intPtr(-1) },
			wantMsg: "'rating' must be a number between 1 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want %q", tt.wantMsg)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Validate() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestPatchBookmarkInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      PatchBookmarkInput
		wantMsg string
	}{
		{
			name:    "no fields",
			in:      PatchBookmarkInput{},
			wantMsg: "Request body must contain either 'title', 'url', 'description' or 'rating'",
		},
		{
			name:    "only empty strings",
			in:      PatchBookmarkInput{Title: strPtr(""), URL: strPtr("")},
			wantMsg: "Request body must contain either 'title', 'url', 'description' or 'rating'",
		},
		{
			name: "title only",
			in:   PatchBookmarkInput{Title: strPtr("new title")},
		},
		{
			name: "rating only",
			in:   PatchBookmarkInput{Rating: intPtr(3)},
		},
		{
			name:    "rating out of range",
			in:      PatchBookmarkInput{Rating: intPtr(9)},
			wantMsg: "'rating' must be a number between 1 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("Validate() = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestPatchBookmarkInputApply(t *testing.T) {
	b := Bookmark{
		ID:          "b-1",
		Title:       "old title",
		URL:         "https://old.example.com",
		Description: "old description",
		Rating:      2,
	}

	in := PatchBookmarkInput{
		Title:  strPtr("new title"),
		Rating: intPtr(4),
	}
	in.Apply(&b)

	if b.Title != "new title" {
		t.Errorf("Title = %q, want %q", b.Title, "new title")
	}
	if b.Rating != 4 {
		t.Errorf("Rating = %d, want 4", b.Rating)
	}
	if b.URL != "https://old.example.com" {
		t.Errorf("URL changed: %q", b.URL)
	}
	if b.Description != "old description" {
		t.Errorf("Description changed: %q", b.Description)
	}
	if b.ID != "b-1" {
		t.Errorf("ID changed: %q", b.ID)
	}
}
