package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the content schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS experience (
		id          INTEGER PRIMARY KEY,
		position    INTEGER NOT NULL,
		role        TEXT NOT NULL,
		company     TEXT NOT NULL,
		period      TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS experience_technologies (
		experience_id INTEGER NOT NULL REFERENCES experience(id) ON DELETE CASCADE,
		position      INTEGER NOT NULL,
		name          TEXT NOT NULL,
		PRIMARY KEY (experience_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id          INTEGER PRIMARY KEY,
		position    INTEGER NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image       TEXT NOT NULL DEFAULT '',
		live_url    TEXT NOT NULL DEFAULT '',
		github_url  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS project_tags (
		project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		tag        TEXT NOT NULL,
		PRIMARY KEY (project_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_project_tags_tag ON project_tags(tag)`,

	`CREATE TABLE IF NOT EXISTS education (
		id          INTEGER PRIMARY KEY CHECK(id = 1),
		degree      TEXT NOT NULL,
		institution TEXT NOT NULL,
		period      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS filter_categories (
		position INTEGER PRIMARY KEY,
		name     TEXT NOT NULL UNIQUE
	)`,

	`CREATE TABLE IF NOT EXISTS profile (
		id       INTEGER PRIMARY KEY CHECK(id = 1),
		name     TEXT NOT NULL,
		headline TEXT NOT NULL DEFAULT '',
		credit   TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS nav_links (
		position INTEGER PRIMARY KEY,
		label    TEXT NOT NULL,
		anchor   TEXT NOT NULL
	)`,
}
