// Command linkden-import bulk-loads a YAML bookmark export into the linkden
// database, running every record through the same validation rules as the API.
//
// Example export file:
//
//	bookmarks:
//	  - title: Go blog
//	    url: https://go.dev/blog
//	    description: Official Go blog
//	    rating: 5
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"linkden/internal/domain"
	"linkden/internal/store/sqlite"
)

type exportFile struct {
	Bookmarks []exportedBookmark `yaml:"bookmarks"`
}

type exportedBookmark struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	Rating      int    `yaml:"rating"`
}

func main() {
	file := flag.String("file", "", "path to the YAML bookmark export")
	dbPath := flag.String("db", "linkden.db", "path to the bookmark database")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	n, err := run(*file, *dbPath)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("imported %d bookmarks into %s", n, *dbPath)
}

func run(file, dbPath string) (int, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return 0, err
	}

	var export exportFile
	if err := yaml.Unmarshal(raw, &export); err != nil {
		return 0, fmt.Errorf("parsing %s: %w", file, err)
	}

	db, err := sqlite.Open(dbPath)
	if err != nil {
		return 0, fmt.Errorf("opening database %s: %w", dbPath, err)
	}
	defer db.Close()
	store := sqlite.NewStore(db)

	ctx := context.Background()
	for i, rec := range export.Bookmarks {
		in := domain.CreateBookmarkInput{
			Title:       optString(rec.Title),
			URL:         optString(rec.URL),
			Description: optString(rec.Description),
			Rating:      optInt(rec.Rating),
		}
		if err := in.Validate(); err != nil {
			return i, fmt.Errorf("bookmark %d (%q): %w", i+1, rec.Title, err)
		}

		b := domain.Bookmark{
			ID:          uuid.NewString(),
			Title:       rec.Title,
			URL:         rec.URL,
			Description: rec.Description,
			Rating:      rec.Rating,
			CreatedAt:   time.Now().UTC(),
		}
		if err := store.Insert(ctx, b); err != nil {
			return i, fmt.Errorf("inserting bookmark %d (%q): %w", i+1, rec.Title, err)
		}
	}
	return len(export.Bookmarks), nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// A zero rating means the key was absent; ratings start at 1.
func optInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
