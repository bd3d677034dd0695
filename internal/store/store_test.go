package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"planboard/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "board.db")}

	in := SampleBoard()
	if err := s.Save(context.Background(), in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, want := out.CollectionIDs(), []string{model.CollectionAvailable, model.CollectionEvents}; !reflect.DeepEqual(got, want) {
		t.Fatalf("collection order: got %v want %v", got, want)
	}
	if !reflect.DeepEqual(out.Collections[0].Cards, in.Collections[0].Cards) {
		t.Fatalf("cards differ:\n got: %+v\nwant: %+v", out.Collections[0].Cards, in.Collections[0].Cards)
	}
	if len(out.Collections[1].Cards) != 0 {
		t.Fatalf("events should be empty; got %v", out.Collections[1].Cards)
	}
	if !reflect.DeepEqual(out.Users, in.Users) {
		t.Fatalf("users differ:\n got: %+v\nwant: %+v", out.Users, in.Users)
	}
}

func TestSavePreservesCardOrder(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "board.db")}

	in := &Board{
		Collections: []Collection{
			{ID: "todo", Cards: []model.Card{
				{ID: "card-z", Title: "Z", Description: ""},
				{ID: "card-a", Title: "A", Description: ""},
				{ID: "card-m", Title: "M", Description: ""},
			}},
		},
	}
	if err := s.Save(context.Background(), in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var got []string
	for _, c := range out.Collections[0].Cards {
		got = append(got, c.ID)
	}
	want := []string{"card-z", "card-a", "card-m"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("card order: got %v want %v", got, want)
	}
}

func TestSaveReplacesPreviousPayload(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "board.db")}
	ctx := context.Background()

	if err := s.Save(ctx, SampleBoard()); err != nil {
		t.Fatalf("Save sample: %v", err)
	}
	small := &Board{Collections: []Collection{{ID: "only", Cards: []model.Card{{ID: "card-1", Title: "t", Description: ""}}}}}
	if err := s.Save(ctx, small); err != nil {
		t.Fatalf("Save small: %v", err)
	}

	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.Collections) != 1 || out.Collections[0].ID != "only" {
		t.Fatalf("stale payload survived: %+v", out.Collections)
	}
	if len(out.Users) != 0 {
		t.Fatalf("stale users survived: %v", out.Users)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("PLANBOARD_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig (missing file): %v", err)
	}
	if cfg.TUI != nil {
		t.Fatalf("expected empty config; got %+v", cfg)
	}

	cfg.TUI = &TUIConfig{Theme: "dark"}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.TUI == nil || got.TUI.Theme != "dark" {
		t.Fatalf("config round trip: %+v", got)
	}
}

func TestDefaultPathHonorsEnv(t *testing.T) {
	t.Setenv("PLANBOARD_BOARD", "/tmp/custom-board.db")
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if got != "/tmp/custom-board.db" {
		t.Fatalf("got %q", got)
	}
}
