package profile

import (
	"testing"

	"shiroink/internal/config"
	"shiroink/internal/pipeline"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	cfg := config.Default()
	cfg.Resolution = pipeline.Resolution{Width: 1448, Height: 1072}
	cfg.RightToLeft = true
	cfg.Quality = 3
	cfg.Workers = 8
	cfg.Preset = "kobo"
	cfg.ContinueOnError = true
	cfg.MaxRetries = 5

	if err := store.Save("kobo-fast", cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load("kobo-fast")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Resolution != cfg.Resolution {
		t.Errorf("resolution = %s, want %s", got.Resolution, cfg.Resolution)
	}
	if got.Preset != "kobo" || !got.RightToLeft || !got.ContinueOnError {
		t.Errorf("loaded config %+v", got)
	}
	if got.Quality != 3 || got.Workers != 8 || got.MaxRetries != 5 {
		t.Errorf("loaded config %+v", got)
	}
}

func TestListAndDelete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, name := range []string{"beta", "alpha"} {
		if err := store.Save(name, config.Default()); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Fatalf("names = %v, want [alpha beta]", names)
	}

	if err := store.Delete("alpha"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	names, err = store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 || names[0] != "beta" {
		t.Fatalf("names after delete = %v", names)
	}
}

func TestLoadMissingProfile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Load("nope"); err == nil {
		t.Fatal("expected error for missing profile")
	}
}

func TestRejectsPathTraversalNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, name := range []string{"", "../evil", "a/b", `a\b`} {
		if err := store.Save(name, config.Default()); err == nil {
			t.Errorf("name %q should be rejected", name)
		}
	}
}
