package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"linkden/internal/domain"
)

// ErrNotFound is returned when no bookmark matches the requested id.
var ErrNotFound = errors.New("bookmark not found")

// Open opens (or creates) the bookmark database at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS bookmarks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		description TEXT NOT NULL,
		rating INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);`)
	return err
}

// Store is the data-access layer over the bookmarks table. All statements are
// parameterized; single-row operations only.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// List returns every bookmark in insertion order. An empty table yields an
// empty slice, not an error.
func (s *Store) List(ctx context.Context) ([]domain.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, url, description, rating, created_at
		 FROM bookmarks
		 ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookmarks := make([]domain.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// Get fetches one bookmark by id. Returns ErrNotFound when no row matches.
func (s *Store) Get(ctx context.Context, id string) (*domain.Bookmark, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, url, description, rating, created_at
		 FROM bookmarks WHERE id = ?`, id,
	)

	b, err := scanBookmark(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Insert persists a new bookmark.
func (s *Store) Insert(ctx context.Context, b domain.Bookmark) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bookmarks (id, title, url, description, rating, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.URL, b.Description, b.Rating, b.CreatedAt.Unix(),
	)
	return err
}

// Update replaces the content fields of an existing bookmark. Returns
// ErrNotFound when the id matches no row.
func (s *Store) Update(ctx context.Context, b domain.Bookmark) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE bookmarks
		 SET title=?, url=?, description=?, rating=?
		 WHERE id=?`,
		b.Title, b.URL, b.Description, b.Rating, b.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Delete removes one bookmark by id. Returns ErrNotFound when the id matches
// no row.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id=?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBookmark(scan func(dest ...any) error) (domain.Bookmark, error) {
	var b domain.Bookmark
	var createdAt int64
	if err := scan(&b.ID, &b.Title, &b.URL, &b.Description, &b.Rating, &createdAt); err != nil {
		return domain.Bookmark{}, err
	}
	b.CreatedAt = time.Unix(createdAt, 0).UTC()
	return b, nil
}
