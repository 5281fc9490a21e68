// ABOUTME: SQLite schema for the Curriculum and Todos tables
// ABOUTME: Rows carry a position so full-table rewrites keep their order
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
CREATE TABLE IF NOT EXISTS curriculum (
    position INTEGER PRIMARY KEY,
    topic TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    difficulty TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'New',
    content_cache TEXT
);

CREATE TABLE IF NOT EXISTS todos (
    position INTEGER PRIMARY KEY,
    task TEXT NOT NULL,
    tag TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'Pending'
);

CREATE INDEX IF NOT EXISTS idx_curriculum_topic ON curriculum(topic);
CREATE INDEX IF NOT EXISTS idx_curriculum_status ON curriculum(status);
`
