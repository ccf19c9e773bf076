package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// ErrCacheMiss is returned by LoadCounts when the store has no entry
// for the requested digest.
var ErrCacheMiss = errors.New("corpus: no cached frequencies for digest")

// Store is a SQLite-backed cache of corpus character counts, keyed by
// the SHA3-256 digest of the corpus file. Keying on content rather
// than path means a moved or copied corpus still hits the cache, and
// an edited corpus misses it.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// StoreOptions configures Store behavior.
type StoreOptions struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging. Recommended; concurrent
	// readers can then overlap the occasional write.
	EnableWAL bool
}

// DefaultStoreOptions returns the default store options.
func DefaultStoreOptions() StoreOptions {
	return StoreOptions{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// OpenStore opens or creates a Store in the given directory.
func OpenStore(dir string, opts StoreOptions) (*Store, error) {
	dbPath := filepath.Join(dir, "corpus.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("corpus store not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check store path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to refuse creating new files and
	// mode=rwc to allow creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus store: %w", err)
	}

	// SQLite supports only one writer; a single pooled connection
	// avoids lock contention entirely.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the path to the SQLite database file.
func (s *Store) Path() string {
	return s.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- One row per cached corpus, keyed by content digest
	CREATE TABLE IF NOT EXISTS corpus_sources (
		digest TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		total_chars INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Per-character occurrence counts for each cached corpus
	CREATE TABLE IF NOT EXISTS corpus_counts (
		digest TEXT NOT NULL,
		char INTEGER NOT NULL,
		count INTEGER NOT NULL,
		PRIMARY KEY (digest, char),
		FOREIGN KEY (digest) REFERENCES corpus_sources(digest) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_counts_digest ON corpus_counts(digest);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// SaveCounts stores the character counts for a corpus digest,
// replacing any previous entry for the same digest.
func (s *Store) SaveCounts(ctx context.Context, digest, path string, counts map[rune]int, total int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO corpus_sources (digest, path, total_chars) VALUES (?, ?, ?)
		 ON CONFLICT(digest) DO UPDATE SET path = excluded.path, total_chars = excluded.total_chars`,
		digest, path, total); err != nil {
		return fmt.Errorf("failed to save corpus source: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM corpus_counts WHERE digest = ?`, digest); err != nil {
		return fmt.Errorf("failed to clear stale counts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO corpus_counts (digest, char, count) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for c, n := range counts {
		if _, err := stmt.ExecContext(ctx, digest, int32(c), n); err != nil {
			return fmt.Errorf("failed to save count for char %d: %w", c, err)
		}
	}

	return tx.Commit()
}

// LoadCounts returns the cached character counts and total for a
// corpus digest, or ErrCacheMiss if the digest is not cached.
func (s *Store) LoadCounts(ctx context.Context, digest string) (map[rune]int, int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT total_chars FROM corpus_sources WHERE digest = ?`, digest).Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, ErrCacheMiss
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load corpus source: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT char, count FROM corpus_counts WHERE digest = ?`, digest)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[rune]int)
	for rows.Next() {
		var c int32
		var n int
		if err := rows.Scan(&c, &n); err != nil {
			return nil, 0, fmt.Errorf("failed to scan count row: %w", err)
		}
		counts[rune(c)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate counts: %w", err)
	}

	return counts, total, nil
}
