package tui

import (
	"os"
	"strings"

	"planboard/internal/board"
	"planboard/internal/roster"
	"planboard/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(st *board.Store, ros *roster.Roster) error {
	// Saved theme preference acts as a default; the env var still wins.
	if cfg, err := store.LoadConfig(); err == nil && cfg.TUI != nil && os.Getenv("PLANBOARD_TUI_THEME") == "" {
		if t := strings.TrimSpace(cfg.TUI.Theme); t != "" {
			_ = os.Setenv("PLANBOARD_TUI_THEME", t)
		}
	}

	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(st, ros)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
