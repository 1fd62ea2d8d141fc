package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/bookstack-labs/stacks-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/bookstack-labs/stacks-cli/internal/core/domain"
	"github.com/bookstack-labs/stacks-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// all catalogue store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.stacks/data/library.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".stacks", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "library.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// BookStore returns a BookStore interface backed by this store.
func (s *Store) BookStore() driven.BookStore {
	return &bookStore{store: s}
}

// ProgressStore returns a ProgressStore interface backed by this store.
func (s *Store) ProgressStore() driven.ProgressStore {
	return &progressStore{store: s}
}

// ReviewStore returns a ReviewStore interface backed by this store.
func (s *Store) ReviewStore() driven.ReviewStore {
	return &reviewStore{store: s}
}

// ActivityStore returns an ActivityStore interface backed by this store.
func (s *Store) ActivityStore() driven.ActivityStore {
	return &activityStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Book Store ====================

// bookStore implements driven.BookStore.
type bookStore struct {
	store *Store
}

var _ driven.BookStore = (*bookStore)(nil)

// Save stores or updates a book.
func (s *bookStore) Save(ctx context.Context, book *domain.Book) error {
	if book == nil || book.ID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	if book.AddedAt.IsZero() {
		book.AddedAt = now
	}
	book.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO books
			(id, title, author, genre, description, isbn, page_count, published_year, cover_url, status, added_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			genre = excluded.genre,
			description = excluded.description,
			isbn = excluded.isbn,
			page_count = excluded.page_count,
			published_year = excluded.published_year,
			cover_url = excluded.cover_url,
			status = excluded.status,
			updated_at = excluded.updated_at
	`, book.ID, book.Title, book.Author, book.Genre, book.Description, book.ISBN,
		book.PageCount, book.PublishedYear, book.CoverURL, string(book.Status),
		book.AddedAt, book.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving book: %w", err)
	}
	return nil
}

// Get retrieves a book by ID.
func (s *bookStore) Get(ctx context.Context, id string) (*domain.Book, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, author, genre, description, isbn, page_count, published_year, cover_url, status, added_at, updated_at
		FROM books WHERE id = ?
	`, id)

	book, err := scanBook(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning book: %w", err)
	}
	return book, nil
}

// List returns all books in insertion order.
func (s *bookStore) List(ctx context.Context) ([]domain.Book, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, author, genre, description, isbn, page_count, published_year, cover_url, status, added_at, updated_at
		FROM books ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book //nolint:prealloc // size unknown from query
	for rows.Next() {
		book, err := scanBook(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, *book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}

	return books, nil
}

// Delete removes a book. Progress and reviews cascade.
func (s *bookStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanBook scans a book row via the given Scan function.
func scanBook(scan func(dest ...any) error) (*domain.Book, error) {
	var book domain.Book
	var status string
	var addedAt, updatedAt sql.NullTime

	if err := scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.Description,
		&book.ISBN, &book.PageCount, &book.PublishedYear, &book.CoverURL, &status,
		&addedAt, &updatedAt); err != nil {
		return nil, err
	}

	book.Status = domain.ReadingStatus(status)
	if addedAt.Valid {
		book.AddedAt = addedAt.Time
	}
	if updatedAt.Valid {
		book.UpdatedAt = updatedAt.Time
	}

	return &book, nil
}

// ==================== Progress Store ====================

// progressStore implements driven.ProgressStore.
type progressStore struct {
	store *Store
}

var _ driven.ProgressStore = (*progressStore)(nil)

// Append stores a new progress entry.
func (s *progressStore) Append(ctx context.Context, entry *domain.ProgressEntry) error {
	if entry == nil || entry.ID == "" || entry.BookID == "" {
		return domain.ErrInvalidInput
	}

	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO progress_entries (id, book_id, page, percent, note, logged_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.BookID, entry.Page, entry.Percent, entry.Note, entry.LoggedAt)

	if err != nil {
		return fmt.Errorf("appending progress entry: %w", err)
	}
	return nil
}

// ListForBook returns entries for a book, oldest first.
func (s *progressStore) ListForBook(ctx context.Context, bookID string) ([]domain.ProgressEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, book_id, page, percent, note, logged_at
		FROM progress_entries WHERE book_id = ?
		ORDER BY logged_at, rowid
	`, bookID)
	if err != nil {
		return nil, fmt.Errorf("querying progress entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ProgressEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var entry domain.ProgressEntry
		var loggedAt sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.BookID, &entry.Page, &entry.Percent,
			&entry.Note, &loggedAt); err != nil {
			return nil, fmt.Errorf("scanning progress entry: %w", err)
		}
		if loggedAt.Valid {
			entry.LoggedAt = loggedAt.Time
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress entries: %w", err)
	}

	return entries, nil
}

// ==================== Review Store ====================

// reviewStore implements driven.ReviewStore.
type reviewStore struct {
	store *Store
}

var _ driven.ReviewStore = (*reviewStore)(nil)

// Save stores or overwrites the review for a book.
func (s *reviewStore) Save(ctx context.Context, review *domain.Review) error {
	if review == nil || review.ID == "" || review.BookID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO reviews (id, book_id, rating, review, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(book_id) DO UPDATE SET
			rating = excluded.rating,
			review = excluded.review,
			updated_at = excluded.updated_at
	`, review.ID, review.BookID, review.Rating, review.Text, review.CreatedAt, review.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving review: %w", err)
	}
	return nil
}

// GetForBook retrieves the review for a book.
func (s *reviewStore) GetForBook(ctx context.Context, bookID string) (*domain.Review, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, book_id, rating, review, created_at, updated_at
		FROM reviews WHERE book_id = ?
	`, bookID)

	var review domain.Review
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&review.ID, &review.BookID, &review.Rating, &review.Text,
		&createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning review: %w", err)
	}

	if createdAt.Valid {
		review.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		review.UpdatedAt = updatedAt.Time
	}

	return &review, nil
}

// ==================== Activity Store ====================

// activityStore implements driven.ActivityStore.
type activityStore struct {
	store *Store
}

var _ driven.ActivityStore = (*activityStore)(nil)

// Append stores a new activity event.
func (s *activityStore) Append(ctx context.Context, event *domain.ActivityEvent) error {
	if event == nil || event.ID == "" {
		return domain.ErrInvalidInput
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO activity_events (id, kind, book_id, book_title, detail, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, event.ID, string(event.Kind), event.BookID, event.BookTitle, event.Detail, event.OccurredAt)

	if err != nil {
		return fmt.Errorf("appending activity event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (s *activityStore) Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, kind, book_id, book_title, detail, occurred_at
		FROM activity_events
		ORDER BY occurred_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying activity events: %w", err)
	}
	defer rows.Close()

	var events []domain.ActivityEvent //nolint:prealloc // size unknown from query
	for rows.Next() {
		var event domain.ActivityEvent
		var kind string
		var occurredAt sql.NullTime
		if err := rows.Scan(&event.ID, &kind, &event.BookID, &event.BookTitle,
			&event.Detail, &occurredAt); err != nil {
			return nil, fmt.Errorf("scanning activity event: %w", err)
		}
		event.Kind = domain.ActivityKind(kind)
		if occurredAt.Valid {
			event.OccurredAt = occurredAt.Time
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity events: %w", err)
	}

	return events, nil
}
