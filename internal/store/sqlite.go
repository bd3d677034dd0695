package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"planboard/internal/model"

	_ "modernc.org/sqlite"
)

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if strings.TrimSpace(s.Path) == "" {
		return nil, errors.New("empty board path")
	}
	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS board_meta (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			collection_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			card_group TEXT NOT NULL,
			json TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_cards_collection ON cards(collection_id, position);`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			json TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the board payload from the board file.
func (s Store) Load(ctx context.Context) (*Board, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := migrateSQLite(ctx, db); err != nil {
		return nil, err
	}

	var orderJSON string
	_ = db.QueryRowContext(ctx, `SELECT v FROM board_meta WHERE k = ?`, "collection_order").Scan(&orderJSON)
	var order []string
	if strings.TrimSpace(orderJSON) != "" {
		if err := json.Unmarshal([]byte(orderJSON), &order); err != nil {
			return nil, err
		}
	}

	out := &Board{}
	byID := map[string]int{}
	for _, id := range order {
		byID[id] = len(out.Collections)
		out.Collections = append(out.Collections, Collection{ID: id})
	}

	rows, err := db.QueryContext(ctx, `SELECT collection_id, json FROM cards ORDER BY collection_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var colID, js string
		if err := rows.Scan(&colID, &js); err != nil {
			return nil, err
		}
		var c model.Card
		if err := json.Unmarshal([]byte(js), &c); err != nil {
			return nil, err
		}
		i, ok := byID[colID]
		if !ok {
			// Collection missing from the meta order: append it.
			i = len(out.Collections)
			byID[colID] = i
			out.Collections = append(out.Collections, Collection{ID: colID})
		}
		out.Collections[i].Cards = append(out.Collections[i].Cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	users, err := readUserRows(ctx, db)
	if err != nil {
		return nil, err
	}
	out.Users = users
	return out, nil
}

func readUserRows(ctx context.Context, db *sql.DB) ([]model.User, error) {
	rows, err := db.QueryContext(ctx, `SELECT json FROM users ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var js string
		if err := rows.Scan(&js); err != nil {
			return nil, err
		}
		var u model.User
		if err := json.Unmarshal([]byte(js), &u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.User{}
	}
	return out, nil
}

// Save writes the full board payload. Replace-all inside one transaction;
// the payload is small and this keeps the file consistent under failures.
func (s Store) Save(ctx context.Context, b *Board) error {
	if b == nil {
		return errors.New("nil board")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrateSQLite(ctx, db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	orderJSON, err := json.Marshal(b.CollectionIDs())
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO board_meta(k, v) VALUES(?, ?)`, "collection_order", string(orderJSON)); err != nil {
		return err
	}

	for _, t := range []string{"cards", "users"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+t); err != nil {
			return err
		}
	}

	nowMs := time.Now().UTC().UnixMilli()
	for _, col := range b.Collections {
		for i, c := range col.Cards {
			raw, err := json.Marshal(c)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO cards(id, collection_id, position, title, card_group, json, updated_at_unixms) VALUES(?, ?, ?, ?, ?, ?, ?)`,
				c.ID, col.ID, i, c.Title, strings.TrimSpace(c.Group), string(raw), nowMs); err != nil {
				return err
			}
		}
	}
	for i, u := range b.Users {
		raw, err := json.Marshal(u)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO users(id, position, json, updated_at_unixms) VALUES(?, ?, ?, ?)`,
			u.ID, i, string(raw), nowMs); err != nil {
			return err
		}
	}

	return tx.Commit()
}
