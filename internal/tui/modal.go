package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Modal chrome shared by the confirm form and the filter dialog.

const modalMaxWidth = 64

func modalWidth(screenWidth int) int {
	w := screenWidth - 8
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}

func modalBodyWidth(width int) int {
	// Box padding eats two columns on each side.
	w := width - 4
	if w < 1 {
		w = 1
	}
	return w
}

// renderModalBox renders a titled box. No borders: some terminals show
// background artifacts when nesting bordered components inside a modal with a
// background color, so the header/surface contrast does the framing.
func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorModalHeaderBg).
		Padding(0, 2).
		Width(width).
		Render(truncateText(title, bodyW))

	body := lipgloss.NewStyle().
		Foreground(colorSurfaceFg).
		Background(colorModalSurfaceBg).
		Padding(1, 2).
		Width(width).
		Render(normalizePane(content, bodyW, 0))

	return strings.Join([]string{header, body}, "\n")
}

// overlayCentered places the modal in the middle of the screen area.
func overlayCentered(screenWidth, screenHeight int, modal string) string {
	return lipgloss.Place(screenWidth, screenHeight, lipgloss.Center, lipgloss.Center, modal)
}
