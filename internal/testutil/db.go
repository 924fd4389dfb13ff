package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// OpenTestDB opens an in-memory SQLite database with the analytics schema.
// The production schema lives in migrations/; this copy uses the dialect
// subset shared by Postgres and SQLite so repository SQL runs unchanged.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// One in-memory SQLite db per connection; keep the pool at one so
	// every query sees the same schema.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema := []string{
		`CREATE TABLE activities (
			id INTEGER PRIMARY KEY,
			user_email TEXT NOT NULL,
			type TEXT NOT NULL,
			details TEXT NOT NULL DEFAULT '{}',
			timestamp TIMESTAMP NOT NULL,
			date TEXT NOT NULL
		)`,
		`CREATE TABLE user_stats (
			user_email TEXT PRIMARY KEY,
			chat_count INTEGER NOT NULL DEFAULT 0,
			translation_count INTEGER NOT NULL DEFAULT 0,
			quiz_attempts INTEGER NOT NULL DEFAULT 0,
			pronunciation_count INTEGER NOT NULL DEFAULT 0,
			total_activities INTEGER NOT NULL DEFAULT 0,
			total_quiz_score INTEGER NOT NULL DEFAULT 0,
			best_quiz_score INTEGER NOT NULL DEFAULT 0,
			last_quiz_score INTEGER NOT NULL DEFAULT 0,
			last_active TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE quiz_results (
			id INTEGER PRIMARY KEY,
			user_email TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			percentage INTEGER NOT NULL DEFAULT 0,
			total_questions INTEGER NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT 'mixed',
			difficulty TEXT NOT NULL DEFAULT 'mixed',
			timestamp TIMESTAMP NOT NULL,
			date TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create test schema: %v", err)
		}
	}

	return db
}
