package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh installs.
// It reflects the state after all migrations and is the single source of truth
// for tests: they load it through GetSchemaSQL() instead of writing their own
// CREATE TABLE statements.
//
// Every table is scoped by app_id so one database file can hold several
// independent lead collections.
//
// When changing tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Leads (one row per lead; position preserves store order)
CREATE TABLE IF NOT EXISTS leads (
	app_id TEXT NOT NULL,
	id INTEGER NOT NULL,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	company TEXT NOT NULL,
	phone TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'untouched',
	PRIMARY KEY (app_id, id)
);

CREATE INDEX IF NOT EXISTS idx_leads_position ON leads(app_id, position);

-- Notes (newest first by position)
CREATE TABLE IF NOT EXISTS lead_notes (
	app_id TEXT NOT NULL,
	lead_id INTEGER NOT NULL,
	id TEXT NOT NULL,
	position INTEGER NOT NULL,
	text TEXT NOT NULL,
	created_at TEXT NOT NULL,
	PRIMARY KEY (app_id, lead_id, id),
	FOREIGN KEY (app_id, lead_id) REFERENCES leads(app_id, id) ON DELETE CASCADE
);

-- Activities (newest first by position)
CREATE TABLE IF NOT EXISTS lead_activities (
	app_id TEXT NOT NULL,
	lead_id INTEGER NOT NULL,
	id TEXT NOT NULL,
	position INTEGER NOT NULL,
	task TEXT NOT NULL,
	due_date TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('Pending', 'Completed')) DEFAULT 'Pending',
	PRIMARY KEY (app_id, lead_id, id),
	FOREIGN KEY (app_id, lead_id) REFERENCES leads(app_id, id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_lead_activities_due ON lead_activities(app_id, status, due_date);

-- Status history (append-only, seq is the append order)
CREATE TABLE IF NOT EXISTS lead_status_history (
	app_id TEXT NOT NULL,
	lead_id INTEGER NOT NULL,
	seq INTEGER NOT NULL,
	status TEXT NOT NULL,
	changed_at TEXT NOT NULL,
	PRIMARY KEY (app_id, lead_id, seq),
	FOREIGN KEY (app_id, lead_id) REFERENCES leads(app_id, id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_lead_status_history_changed ON lead_status_history(app_id, changed_at);
`

// InitSchema creates the schema on a fresh database or migrates an existing one.
func InitSchema(db *sql.DB) error {
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(db)
	}

	var leadTables int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = 'leads'").Scan(&leadTables)
	if err != nil {
		return err
	}
	if leadTables > 0 {
		// Tables exist without version tracking - let migrations reconcile them.
		return RunMigrations(db)
	}

	// Completely fresh install - create the current schema and mark every migration applied
	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(db); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
