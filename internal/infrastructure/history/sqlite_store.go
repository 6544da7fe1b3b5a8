package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/ports"
)

// SQLiteStore persists history in a SQLite database. It implements the same
// port as the CSV store; SQLite's journal gives the atomic-replace guarantee
// the CSV store gets from write-then-rename.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, &domain.HistoryError{Msg: "failed to open history database", Err: err}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &domain.HistoryError{Msg: "failed to open history database", Err: err}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		db.Close()
		return nil, &domain.HistoryError{Msg: "failed to initialize history database", Err: err}
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS calculations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		operation TEXT NOT NULL,
		a REAL NOT NULL,
		b REAL NOT NULL,
		result REAL NOT NULL,
		timestamp TEXT NOT NULL
	);`)
	return err
}

// Save replaces the stored sequence with records inside one transaction.
func (s *SQLiteStore) Save(records []domain.Calculation) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return "", &domain.HistoryError{Msg: "failed to save history", Err: err}
	}
	if _, err := tx.Exec("DELETE FROM calculations"); err != nil {
		tx.Rollback()
		return "", &domain.HistoryError{Msg: "failed to save history", Err: err}
	}
	for _, rec := range records {
		_, err := tx.Exec(`INSERT INTO calculations (operation, a, b, result, timestamp)
			VALUES (?, ?, ?, ?, ?)`,
			rec.Operation, rec.A, rec.B, rec.Result, rec.Timestamp)
		if err != nil {
			tx.Rollback()
			return "", &domain.HistoryError{Msg: "failed to save history", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return "", &domain.HistoryError{Msg: "failed to save history", Err: err}
	}
	return s.path, nil
}

// Load returns the stored sequence in insertion order.
func (s *SQLiteStore) Load() ([]domain.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT operation, a, b, result, timestamp
		FROM calculations ORDER BY id`)
	if err != nil {
		return nil, &domain.HistoryError{Msg: "failed to load history", Err: err}
	}
	defer rows.Close()

	var records []domain.Calculation
	for rows.Next() {
		var rec domain.Calculation
		if err := rows.Scan(&rec.Operation, &rec.A, &rec.B, &rec.Result, &rec.Timestamp); err != nil {
			return nil, &domain.HistoryError{Msg: "failed to load history", Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.HistoryError{Msg: "failed to load history", Err: err}
	}
	if len(records) == 0 {
		return nil, &domain.HistoryError{Err: domain.ErrHistoryEmpty}
	}
	return records, nil
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string { return s.path }

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
