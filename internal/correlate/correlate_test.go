package correlate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/fuji-flow/internal/config"
)

func testNaming() config.NamingConfig {
	cfg := config.Default()
	return cfg.Naming
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFindPairs(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "DSCFA.MOV"))
	touch(t, filepath.Join(dir, "DSCFA-1.mov"))
	touch(t, filepath.Join(dir, "DSCFB.MOV"))
	touch(t, filepath.Join(dir, "DSCFC-1.mov")) // no original
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "IMG-1.mov")) // wrong prefix

	pairs, warnings, err := FindPairs(dir, testNaming())
	if err != nil {
		t.Fatalf("FindPairs() error = %v", err)
	}

	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1: %v", len(pairs), pairs)
	}
	p := pairs[0]
	if p.Base != "DSCFA" {
		t.Errorf("Base = %q, want DSCFA", p.Base)
	}
	if filepath.Base(p.Original) != "DSCFA.MOV" || filepath.Base(p.Processed) != "DSCFA-1.mov" {
		t.Errorf("pair = %+v", p)
	}

	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if filepath.Base(warnings[0].Path) != "DSCFC-1.mov" {
		t.Errorf("warning = %v", warnings[0])
	}
}

func TestFindPairsCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	// Lowercase original extension does not match the convention.
	touch(t, filepath.Join(dir, "DSCFA.mov"))
	touch(t, filepath.Join(dir, "DSCFA-1.mov"))

	pairs, warnings, err := FindPairs(dir, testNaming())
	if err != nil {
		t.Fatalf("FindPairs() error = %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("got %d pairs, want 0", len(pairs))
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
}

func TestFindPairsEmitsEachMatchOnce(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"DSCFA.MOV", "DSCFA-1.mov", "DSCFB.MOV", "DSCFB-1.mov"} {
		touch(t, filepath.Join(dir, n))
	}

	pairs, _, err := FindPairs(dir, testNaming())
	if err != nil {
		t.Fatalf("FindPairs() error = %v", err)
	}

	seen := map[string]int{}
	for _, p := range pairs {
		seen[p.Base]++
	}
	if len(pairs) != 2 || seen["DSCFA"] != 1 || seen["DSCFB"] != 1 {
		t.Errorf("pairs = %v", pairs)
	}
}

func TestFindPairsMissingDir(t *testing.T) {
	_, _, err := FindPairs("/nonexistent-dir-xyz", testNaming())
	if err == nil {
		t.Error("FindPairs() should fail for a missing directory")
	}
}
