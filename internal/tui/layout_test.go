package tui

import (
	"strings"
	"testing"
)

func TestNormalizePanePadsAndCuts(t *testing.T) {
	out := normalizePane("ab\ncdefgh", 4, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines; got %d", len(lines))
	}
	if lines[0] != "ab  " {
		t.Fatalf("pad: %q", lines[0])
	}
	if lines[1] != "cde…" {
		t.Fatalf("cut: %q", lines[1])
	}
	if lines[2] != "    " {
		t.Fatalf("fill: %q", lines[2])
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello", 10); got != "hello" {
		t.Fatalf("no-op: %q", got)
	}
	if got := truncateText("hello", 4); got != "hel…" {
		t.Fatalf("cut: %q", got)
	}
	if got := truncateText("hello", 0); got != "" {
		t.Fatalf("zero width: %q", got)
	}
}
