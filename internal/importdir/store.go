// Package importdir reads lead CSV files from the operator's import directory.
package importdir

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"leadconsole/internal/lead"
)

// DirEnv overrides the import directory (for testing and scripted runs).
const DirEnv = "LEADCONSOLE_IMPORT_DIR"

// Store resolves and reads CSV files relative to a base directory.
// Absolute paths and "~/" paths are read as given.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at dir, at $LEADCONSOLE_IMPORT_DIR when dir
// is empty, or at the working directory when both are empty.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = os.Getenv(DirEnv)
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	return &Store{baseDir: dir}, nil
}

// BaseDir returns the directory relative names are resolved against.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Resolve returns the path Read would open for name.
func (s *Store) Resolve(name string) string {
	name = strings.TrimSpace(name)
	if rest, ok := strings.CutPrefix(name, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.baseDir, name)
}

// List returns the names of the .csv files directly under the base directory,
// sorted. A missing directory lists as empty.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the whole text of the named file. Every failure is a
// *lead.ImportError; a blank name wraps lead.ErrNoFile.
func (s *Store) Read(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", &lead.ImportError{Err: lead.ErrNoFile}
	}
	if err := ctx.Err(); err != nil {
		return "", &lead.ImportError{Source: name, Err: err}
	}
	b, err := os.ReadFile(s.Resolve(name))
	if err != nil {
		return "", &lead.ImportError{Source: name, Err: err}
	}
	return string(b), nil
}
