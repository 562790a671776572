package main

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type historyEntry struct {
	ID        int64
	Expr      string
	Result    float64
	CreatedAt time.Time
}

// historyStore keeps evaluated expressions and their results in a SQLite
// database so past sessions can be listed.
type historyStore struct {
	db *sql.DB
}

func openHistory(path string) (*historyStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		expr TEXT NOT NULL,
		result REAL NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &historyStore{db: db}, nil
}

func (h *historyStore) Close() error {
	return h.db.Close()
}

func (h *historyStore) record(expr string, result float64) error {
	_, err := h.db.Exec(`INSERT INTO history (expr, result) VALUES (?, ?)`, expr, result)
	return err
}

func (h *historyStore) list(limit int) ([]historyEntry, error) {
	rows, err := h.db.Query(`SELECT id, expr, result, created_at
		FROM history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []historyEntry{}
	for rows.Next() {
		var e historyEntry
		if err := rows.Scan(&e.ID, &e.Expr, &e.Result, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
