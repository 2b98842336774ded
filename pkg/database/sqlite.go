package database

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// NewSQLiteConnection opens (creating if needed) the embedded user store and
// bootstraps its schema. One row per username; progress and timeline are
// JSON-encoded columns so the record shape stays identical to the file store.
func NewSQLiteConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		"username" TEXT PRIMARY KEY,
		"password" TEXT NOT NULL,
		"goal_job" TEXT,
		"goal_history" TEXT NOT NULL DEFAULT '[]',
		"progress" TEXT NOT NULL DEFAULT '{}',
		"timeline" TEXT NOT NULL DEFAULT '[]'
	);`
	if _, err := db.Exec(createUsersTable); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
