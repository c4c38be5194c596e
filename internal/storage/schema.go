package storage

// Schema contains SQL statements to create database tables.
const Schema = `
-- Responses table: cached GET responses keyed by URL and Accept value
CREATE TABLE IF NOT EXISTS responses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    accept TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL,
    headers_json TEXT NOT NULL,
    fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(url, accept)
);

CREATE INDEX IF NOT EXISTS idx_responses_key ON responses(url, accept);
CREATE INDEX IF NOT EXISTS idx_responses_fetched_at ON responses(fetched_at);

-- Results table: single last-results slot, overwritten on every save
CREATE TABLE IF NOT EXISTS results (
    position INTEGER PRIMARY KEY,
    label TEXT NOT NULL,
    url TEXT NOT NULL,
    saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
