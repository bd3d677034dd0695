package store

import (
	"os"
	"path/filepath"
	"strings"

	"planboard/internal/model"
)

const boardFileName = "board.db"

// Board is the seed payload: the initial collections of cards plus the
// roster users. It is initialization-time configuration for the engine —
// the running session never writes its state back automatically.
type Board struct {
	Collections []Collection `json:"collections"`
	Users       []model.User `json:"users"`
}

// Collection pairs a collection id with its cards in insertion order.
type Collection struct {
	ID    string       `json:"id"`
	Cards []model.Card `json:"cards"`
}

// CollectionIDs returns the collection ids in payload order.
func (b *Board) CollectionIDs() []string {
	out := make([]string, 0, len(b.Collections))
	for _, c := range b.Collections {
		out = append(out, c.ID)
	}
	return out
}

// Store reads and writes the board file.
type Store struct {
	Path string
}

// DefaultPath resolves the board file: $PLANBOARD_BOARD if set, otherwise
// ~/.planboard/board.db.
func DefaultPath() (string, error) {
	if v := strings.TrimSpace(os.Getenv("PLANBOARD_BOARD")); v != "" {
		return v, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, boardFileName), nil
}

func (s Store) ensureDir() error {
	return os.MkdirAll(filepath.Dir(s.Path), 0o755)
}

// Exists reports whether the board file is present.
func (s Store) Exists() bool {
	st, err := os.Stat(s.Path)
	return err == nil && !st.IsDir()
}
