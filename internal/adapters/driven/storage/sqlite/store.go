package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/artgraph/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driven"
)

// DatabaseFile is the name of the database file within the data directory.
const DatabaseFile = "collections.db"

// Store is a SQLite-based storage that provides access to the
// store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.artgraph/data/collections.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".artgraph", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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

// CollectionStore returns a CollectionStore interface backed by this store.
func (s *Store) CollectionStore() driven.CollectionStore {
	return &collectionStore{store: s}
}

// migrate runs all pending migrations, recording each applied version.
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

		if err := s.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// applyMigration runs one migration and records its version atomically.
func (s *Store) applyMigration(version int, content string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(content); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Collection Store ====================

// collectionStore implements driven.CollectionStore.
type collectionStore struct {
	store *Store
}

var _ driven.CollectionStore = (*collectionStore)(nil)

// Save stores a collection and its artworks, replacing any collection
// with the same ID.
func (s *collectionStore) Save(ctx context.Context, collection *domain.Collection) error {
	if collection == nil || collection.ID == "" {
		return domain.ErrInvalidInput
	}

	coloursJSON, err := marshalStrings(collection.Query.Colours)
	if err != nil {
		return fmt.Errorf("marshalling colours: %w", err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO collections (id, artist, colours, url, total_results, excluded, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			artist = excluded.artist,
			colours = excluded.colours,
			url = excluded.url,
			total_results = excluded.total_results,
			excluded = excluded.excluded,
			fetched_at = excluded.fetched_at
	`, collection.ID, collection.Query.Artist, coloursJSON, collection.URL,
		collection.TotalResults, collection.Excluded, collection.FetchedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving collection: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM artworks WHERE collection_id = ?", collection.ID); err != nil {
		return fmt.Errorf("clearing artworks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO artworks (collection_id, position, id, title, time_period, creators, image_url, provider)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing artwork insert: %w", err)
	}
	defer stmt.Close()

	for i := range collection.Artworks {
		a := &collection.Artworks[i]
		creatorsJSON, err := marshalStrings(a.Creators)
		if err != nil {
			return fmt.Errorf("marshalling creators: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, collection.ID, i, a.ID, a.Title, a.TimePeriod,
			creatorsJSON, a.ImageURL, a.Provider); err != nil {
			return fmt.Errorf("saving artwork %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing collection: %w", err)
	}
	return nil
}

// Get retrieves a collection by ID.
func (s *collectionStore) Get(ctx context.Context, id string) (*domain.Collection, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, artist, colours, url, total_results, excluded, fetched_at
		FROM collections WHERE id = ?
	`, id)
	return s.load(ctx, row)
}

// Latest retrieves the most recently fetched collection.
func (s *collectionStore) Latest(ctx context.Context) (*domain.Collection, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, artist, colours, url, total_results, excluded, fetched_at
		FROM collections ORDER BY fetched_at DESC, rowid DESC LIMIT 1
	`)
	return s.load(ctx, row)
}

// load scans a collection row and attaches its artworks.
func (s *collectionStore) load(ctx context.Context, row *sql.Row) (*domain.Collection, error) {
	collection, err := scanCollection(row)
	if err != nil {
		return nil, err
	}

	artworks, err := s.artworks(ctx, collection.ID)
	if err != nil {
		return nil, err
	}
	collection.Artworks = artworks
	return collection, nil
}

// artworks returns the artworks of a collection in position order.
func (s *collectionStore) artworks(ctx context.Context, collectionID string) ([]domain.Artwork, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, time_period, creators, image_url, provider
		FROM artworks WHERE collection_id = ? ORDER BY position
	`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("querying artworks: %w", err)
	}
	defer rows.Close()

	artworks := []domain.Artwork{}
	for rows.Next() {
		var a domain.Artwork
		var creatorsJSON string
		if err := rows.Scan(&a.ID, &a.Title, &a.TimePeriod, &creatorsJSON, &a.ImageURL, &a.Provider); err != nil {
			return nil, fmt.Errorf("scanning artwork: %w", err)
		}
		if err := json.Unmarshal([]byte(creatorsJSON), &a.Creators); err != nil {
			return nil, fmt.Errorf("unmarshaling creators: %w", err)
		}
		artworks = append(artworks, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating artworks: %w", err)
	}
	return artworks, nil
}

// List returns summaries of all collections, newest first.
func (s *collectionStore) List(ctx context.Context) ([]domain.CollectionSummary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT c.id, c.artist, c.colours, c.total_results, c.excluded, c.fetched_at,
			(SELECT COUNT(*) FROM artworks a WHERE a.collection_id = c.id)
		FROM collections c
		ORDER BY c.fetched_at DESC, c.rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}
	defer rows.Close()

	summaries := []domain.CollectionSummary{}
	for rows.Next() {
		var summary domain.CollectionSummary
		var coloursJSON string
		var fetchedAt int64
		if err := rows.Scan(&summary.ID, &summary.Query.Artist, &coloursJSON,
			&summary.TotalResults, &summary.Excluded, &fetchedAt, &summary.Artworks); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}
		if err := json.Unmarshal([]byte(coloursJSON), &summary.Query.Colours); err != nil {
			return nil, fmt.Errorf("unmarshaling colours: %w", err)
		}
		summary.FetchedAt = time.Unix(0, fetchedAt).UTC()
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collections: %w", err)
	}
	return summaries, nil
}

// Delete removes a collection; its artworks cascade.
func (s *collectionStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ==================== Helper Functions ====================

// scanCollection scans a collection row without its artworks.
func scanCollection(row *sql.Row) (*domain.Collection, error) {
	var c domain.Collection
	var coloursJSON string
	var fetchedAt int64
	if err := row.Scan(&c.ID, &c.Query.Artist, &coloursJSON, &c.URL,
		&c.TotalResults, &c.Excluded, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning collection: %w", err)
	}

	if err := json.Unmarshal([]byte(coloursJSON), &c.Query.Colours); err != nil {
		return nil, fmt.Errorf("unmarshaling colours: %w", err)
	}
	c.FetchedAt = time.Unix(0, fetchedAt).UTC()
	return &c, nil
}

// marshalStrings encodes a string list as JSON, writing nil as [].
func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
