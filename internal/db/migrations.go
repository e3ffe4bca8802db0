package db

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_lead_tables",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_activity_and_history_indexes",
		Up:      migrationV2,
	},
}

// CurrentVersion is the schema version after all migrations.
func CurrentVersion() int {
	return migrations[len(migrations)-1].Version
}

func createVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	return nil
}

// RunMigrations executes all pending migrations, each in its own transaction.
func RunMigrations(db *sql.DB) error {
	if err := createVersionTable(db); err != nil {
		return err
	}

	var currentVersion int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"version": migration.Version,
			"name":    migration.Name,
		}).Info("running migration")

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// migrationV1 creates the lead tables without secondary indexes
func migrationV1(tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS leads (
			app_id TEXT NOT NULL,
			id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			company TEXT NOT NULL,
			phone TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'untouched',
			PRIMARY KEY (app_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS lead_notes (
			app_id TEXT NOT NULL,
			lead_id INTEGER NOT NULL,
			id TEXT NOT NULL,
			position INTEGER NOT NULL,
			text TEXT NOT NULL,
			created_at TEXT NOT NULL,
			PRIMARY KEY (app_id, lead_id, id),
			FOREIGN KEY (app_id, lead_id) REFERENCES leads(app_id, id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS lead_activities (
			app_id TEXT NOT NULL,
			lead_id INTEGER NOT NULL,
			id TEXT NOT NULL,
			position INTEGER NOT NULL,
			task TEXT NOT NULL,
			due_date TEXT NOT NULL,
			status TEXT NOT NULL CHECK(status IN ('Pending', 'Completed')) DEFAULT 'Pending',
			PRIMARY KEY (app_id, lead_id, id),
			FOREIGN KEY (app_id, lead_id) REFERENCES leads(app_id, id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS lead_status_history (
			app_id TEXT NOT NULL,
			lead_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			status TEXT NOT NULL,
			changed_at TEXT NOT NULL,
			PRIMARY KEY (app_id, lead_id, seq),
			FOREIGN KEY (app_id, lead_id) REFERENCES leads(app_id, id) ON DELETE CASCADE
		)`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// migrationV2 adds the indexes used by ordered loads, the due queue and range scans
func migrationV2(tx *sql.Tx) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_leads_position ON leads(app_id, position)`,
		`CREATE INDEX IF NOT EXISTS idx_lead_activities_due ON lead_activities(app_id, status, due_date)`,
		`CREATE INDEX IF NOT EXISTS idx_lead_status_history_changed ON lead_status_history(app_id, changed_at)`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
