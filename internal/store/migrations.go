package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sites (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	url         TEXT NOT NULL DEFAULT '',
	platform    TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id           TEXT PRIMARY KEY,
	site_id      TEXT NOT NULL,
	title        TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'not-started',
	due_date     DATETIME NOT NULL,
	notes        TEXT NOT NULL DEFAULT '',
	recurrence   TEXT NOT NULL DEFAULT 'none',
	checklist    TEXT NOT NULL DEFAULT '[]',
	created_at   DATETIME NOT NULL,
	completed_at DATETIME
);

CREATE TABLE IF NOT EXISTS activity_logs (
	id         TEXT PRIMARY KEY,
	task_id    TEXT NOT NULL,
	site_id    TEXT NOT NULL,
	action     TEXT NOT NULL,
	timestamp  DATETIME NOT NULL,
	site_name  TEXT NOT NULL DEFAULT '',
	task_title TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_tasks_site_id ON tasks(site_id);
CREATE INDEX IF NOT EXISTS idx_activity_logs_timestamp ON activity_logs(timestamp);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
