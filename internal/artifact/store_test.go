package artifact

import (
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/gompdf/ingredientpdf/pkg/report"
)

var namePattern = regexp.MustCompile(`^ingredients_analysis_[0-9a-f]{8}\.pdf$`)

func TestCreateMakesDirectoryAndNamesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "temp", "nested")
	store := NewStore(dir, "ingredients_analysis")

	f, err := store.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if filepath.Dir(f.Name()) != dir {
		t.Fatalf("expected file in %s, got %s", dir, f.Name())
	}
	if !namePattern.MatchString(filepath.Base(f.Name())) {
		t.Fatalf("unexpected artifact name %q", filepath.Base(f.Name()))
	}
}

func TestCreateConcurrentNamesAreUnique(t *testing.T) {
	store := NewStore(t.TempDir(), "ingredients_analysis")

	const n = 32
	names := make([]string, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, err := store.Create()
			if err != nil {
				t.Errorf("create %d: %v", i, err)
				return
			}
			names[i] = f.Name()
			_ = f.Close()
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, name := range names {
		if seen[name] {
			t.Fatalf("duplicate artifact path %s", name)
		}
		seen[name] = true
	}
}

func TestCreateRetriesOnCollision(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "ingredients_analysis")
	ids := []string{"aaaaaaaa", "aaaaaaaa", "bbbbbbbb"}
	store.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first, err := store.Create()
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	first.Close()

	second, err := store.Create()
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	second.Close()

	if filepath.Base(second.Name()) != "ingredients_analysis_bbbbbbbb.pdf" {
		t.Fatalf("expected retry to pick a fresh id, got %s", second.Name())
	}
}

func TestCreateFailsWhenDirectoryIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "temp")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	_, err := NewStore(blocker, "ingredients_analysis").Create()
	if report.KindFromError(err) != report.KindArtifactIO {
		t.Fatalf("expected artifact_io error, got %v", err)
	}
}

func TestRemoveIgnoresMissingFile(t *testing.T) {
	store := NewStore(t.TempDir(), "ingredients_analysis")
	if err := store.Remove(filepath.Join(store.Dir, "missing.pdf")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestSweepRemovesOnlyStaleArtifacts(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "ingredients_analysis")
	now := time.Now()
	store.Now = func() time.Time { return now }

	stale := filepath.Join(dir, "ingredients_analysis_00000001.pdf")
	fresh := filepath.Join(dir, "ingredients_analysis_00000002.pdf")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{stale, fresh, other} {
		if err := os.WriteFile(p, []byte("%PDF"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	old := now.Add(-2 * time.Hour)
	for _, p := range []string{stale, other} {
		if err := os.Chtimes(p, old, old); err != nil {
			t.Fatalf("chtimes %s: %v", p, err)
		}
	}

	removed, err := store.Sweep(time.Hour)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("expected stale artifact removed")
	}
	for _, p := range []string{fresh, other} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected %s kept: %v", p, err)
		}
	}
}

func TestSweepMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent"), "ingredients_analysis")
	removed, err := store.Sweep(time.Hour)
	if err != nil || removed != 0 {
		t.Fatalf("expected (0, nil), got (%d, %v)", removed, err)
	}
}
