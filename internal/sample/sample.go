// Package sample ships an example lead file operators can copy into the
// import directory to see the expected CSV layout.
package sample

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name the example is written under.
const FileName = "leads-exemplo.csv"

//go:embed leads-exemplo.csv
var files embed.FS

// CSV returns the example file's contents.
func CSV() []byte {
	data, err := files.ReadFile(FileName)
	if err != nil {
		// Embedded at compile time.
		panic(err)
	}
	return data
}

// Write copies the example into dir and returns its path. An existing file is
// left alone unless force is set.
func Write(dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create import directory: %w", err)
	}
	if err := os.WriteFile(path, CSV(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return path, nil
}
