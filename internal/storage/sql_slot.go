package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// SQLSlot keeps slots as rows of a single table. It works against a local
// SQLite file and a remote libsql database alike.
type SQLSlot struct {
	DB *sql.DB
}

// OpenSQLiteSlot opens (or creates) a local SQLite database at path.
func OpenSQLiteSlot(path string) (*SQLSlot, error) {
	dsn := path
	if path != ":memory:" && !strings.Contains(path, "?") {
		dsn = path + "?_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", path, err)
	}
	// One process, one writer. Also keeps ":memory:" on a single connection.
	db.SetMaxOpenConns(1)

	return newSQLSlot(db)
}

// OpenLibSQLSlot connects to a libsql server such as Turso.
func OpenLibSQLSlot(rawURL, authToken string) (*SQLSlot, error) {
	dsn := rawURL
	if authToken != "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("invalid libsql url: %w", err)
		}
		q := u.Query()
		q.Set("authToken", authToken)
		u.RawQuery = q.Encode()
		dsn = u.String()
	}

	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", rawURL, err)
	}
	return newSQLSlot(db)
}

func newSQLSlot(db *sql.DB) (*SQLSlot, error) {
	if err := initializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}
	return &SQLSlot{DB: db}, nil
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS slots (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

func (s *SQLSlot) Get(key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("Failed to read slot %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLSlot) Set(key, value string) error {
	_, err := s.DB.Exec(
		`INSERT INTO slots (key, value, updated_at)
         VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET
             value = excluded.value,
             updated_at = excluded.updated_at`,
		key,
		value,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to write slot %s: %w", key, err)
	}
	return nil
}

func (s *SQLSlot) Close() error {
	return s.DB.Close()
}
