package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Database handles all database operations. It backs both the response
// cache and the last-results slot.
type Database struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewDatabase creates a new database connection.
func NewDatabase(path string) (*Database, error) {
	// SQLite connection with optimizations
	dsn := fmt.Sprintf("%s?_journal=WAL&_synchronous=NORMAL&_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	return &Database{db: db}, nil
}

// Initialize creates tables and indexes.
func (d *Database) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// --- Response cache operations ---

// Get returns the cached body and headers for (url, accept) when the stored
// entry is younger than maxAge.
func (d *Database) Get(url, accept string, maxAge time.Duration) (string, map[string]string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var body, headersJSON string
	var fetchedAt time.Time

	err := d.db.QueryRow(
		`SELECT body, headers_json, fetched_at FROM responses WHERE url = ? AND accept = ?`,
		url, accept,
	).Scan(&body, &headersJSON, &fetchedAt)
	if err != nil {
		return "", nil, false
	}

	if time.Since(fetchedAt) >= maxAge {
		return "", nil, false
	}

	headers := make(map[string]string)
	if err := json.Unmarshal([]byte(headersJSON), &headers); err != nil {
		return "", nil, false
	}

	return body, headers, true
}

// Set stores a response body and headers under (url, accept), replacing any
// previous entry for the same key.
func (d *Database) Set(url, accept, body string, headers map[string]string) error {
	headersJSON, err := json.Marshal(headers)
	if err != nil {
		return fmt.Errorf("failed to marshal headers: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	_, err = d.db.Exec(
		`INSERT INTO responses (url, accept, body, headers_json, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(url, accept) DO UPDATE SET
		     body = excluded.body,
		     headers_json = excluded.headers_json,
		     fetched_at = excluded.fetched_at`,
		url, accept, body, string(headersJSON), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to store response: %w", err)
	}

	return nil
}

// --- Last-results operations ---

// SaveResults overwrites the last-results slot with links.
func (d *Database) SaveResults(links []ResultLink) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM results`); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}

	for _, link := range links {
		_, err := tx.Exec(
			`INSERT INTO results (position, label, url) VALUES (?, ?, ?)`,
			link.Position, link.Label, link.URL,
		)
		if err != nil {
			return fmt.Errorf("failed to store result %d: %w", link.Position, err)
		}
	}

	return tx.Commit()
}

// LoadResults reads the last-results slot in position order.
func (d *Database) LoadResults() ([]ResultLink, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rows, err := d.db.Query(`SELECT position, label, url FROM results ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	defer rows.Close()

	var links []ResultLink
	for rows.Next() {
		var link ResultLink
		if err := rows.Scan(&link.Position, &link.Label, &link.URL); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		links = append(links, link)
	}

	return links, rows.Err()
}
