package artifact

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gompdf/ingredientpdf/pkg/report"
)

const createAttempts = 3

// Store hands out uniquely named files in a scratch directory.
type Store struct {
	Dir    string
	Prefix string
	Ext    string
	Now    func() time.Time

	newID func() string
}

// NewStore creates a store writing <dir>/<prefix>_<8 hex>.pdf files.
func NewStore(dir, prefix string) *Store {
	return &Store{Dir: dir, Prefix: prefix, Ext: ".pdf", Now: time.Now}
}

// Create makes the scratch directory if needed and exclusively creates a new
// artifact file. The caller owns the returned file.
func (s *Store) Create() (*os.File, error) {
	if s == nil {
		return nil, report.NewError(report.KindInternal, "artifact store is nil", nil)
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, report.NewError(report.KindArtifactIO, fmt.Sprintf("create scratch directory %q", dir), err)
	}

	var lastErr error
	for range createAttempts {
		path := filepath.Join(dir, s.name())
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			return f, nil
		}
		lastErr = err
		if !errors.Is(err, os.ErrExist) {
			break
		}
	}
	return nil, report.NewError(report.KindArtifactIO, "create artifact file", lastErr)
}

// Remove deletes an artifact. A file that is already gone is not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return report.NewError(report.KindCleanup, fmt.Sprintf("remove artifact %q", path), err)
	}
	return nil
}

// Sweep removes artifacts in the scratch directory last modified more than
// olderThan ago and returns how many were removed. A missing directory is empty.
func (s *Store) Sweep(olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, report.NewError(report.KindCleanup, fmt.Sprintf("read scratch directory %q", s.Dir), err)
	}

	cutoff := s.now().Add(-olderThan)
	removed := 0
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !s.owns(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := s.Remove(filepath.Join(s.Dir, entry.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

func (s *Store) name() string {
	id := s.newID
	if id == nil {
		id = shortID
	}
	return s.Prefix + "_" + id() + s.Ext
}

func (s *Store) owns(name string) bool {
	return strings.HasPrefix(name, s.Prefix+"_") && strings.HasSuffix(name, s.Ext)
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// shortID returns the first 8 hex digits of a random UUID.
func shortID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:4])
}
