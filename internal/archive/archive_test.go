package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCreateExtractRoundTrip(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "p1.png"), "one")
	writeFile(t, filepath.Join(src, "sub", "p2.png"), "two")

	bundle := filepath.Join(t.TempDir(), "vol.cbz")
	added := 0
	if err := Create(bundle, src, func(string) { added++ }); err != nil {
		t.Fatalf("create: %v", err)
	}
	if added != 2 {
		t.Fatalf("callback ran %d times, want 2", added)
	}

	members, err := Members(bundle)
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("members = %v", members)
	}

	out := t.TempDir()
	if err := Extract(bundle, out); err != nil {
		t.Fatalf("extract: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(out, "sub", "p2.png"))
	if err != nil {
		t.Fatalf("read extracted: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("content = %q, want %q", got, "two")
	}
}

func TestExtractRejectsEscapingMember(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "evil.cbz")

	f, err := os.Create(bundle)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("../escape.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("nope")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(dir, "out")
	if err := Extract(bundle, dest); err == nil {
		t.Fatal("expected extraction error for escaping member")
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); !os.IsNotExist(err) {
		t.Fatal("escaping member must not be written")
	}
}

func TestExtractMissingBundle(t *testing.T) {
	err := Extract(filepath.Join(t.TempDir(), "missing.cbz"), t.TempDir())
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*ExtractionError); !ok {
		t.Fatalf("expected ExtractionError, got %T", err)
	}
}

func TestCreateCleansUpOnFailure(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "vol.cbz")
	err := Create(bundle, filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if _, ok := err.(*CreationError); !ok {
		t.Fatalf("expected CreationError, got %T", err)
	}
	if _, statErr := os.Stat(bundle); !os.IsNotExist(statErr) {
		t.Fatal("partial bundle should be removed")
	}
}

func TestIsBundle(t *testing.T) {
	for path, want := range map[string]bool{
		"vol.cbz":  true,
		"vol.CBZ":  true,
		"vol.zip":  true,
		"vol.rar":  false,
		"vol.png":  false,
		"cbz":      false,
		"vol.cbz/": false,
	} {
		if got := IsBundle(path); got != want {
			t.Errorf("IsBundle(%q) = %v, want %v", path, got, want)
		}
	}
}
