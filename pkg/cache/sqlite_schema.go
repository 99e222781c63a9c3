package cache

// SchemaVersion is the current cache database schema version.
const SchemaVersion = 1

// Schema creates the cache tables and indexes.
const Schema = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS results (
	id         TEXT NOT NULL,
	key        TEXT PRIMARY KEY,
	language   TEXT NOT NULL,
	output     TEXT NOT NULL,
	cost       INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_created_at ON results(created_at);
CREATE INDEX IF NOT EXISTS idx_results_language ON results(language);
`

// InsertSchemaVersion records the schema version, once.
const InsertSchemaVersion = `
INSERT OR IGNORE INTO schema_version (version) VALUES (?)
`

// GetSchemaVersion reads the recorded schema version.
const GetSchemaVersion = `
SELECT version FROM schema_version LIMIT 1
`
