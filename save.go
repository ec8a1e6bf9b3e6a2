// File: params/save.go
package params

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Save writes the current parameter values to an INI file atomically
// (temp file plus rename). Dotted names become section-qualified keys,
// the inverse of the merge-time translation. Only parameters with a
// resolved value are written.
func (r *Registry) Save(path string) error {
	cfg := ini.Empty()
	for _, it := range r.items {
		raw, ok := it.entry.Raw()
		if !ok {
			continue
		}
		sectionName, keyName := ini.DefaultSection, it.name
		if i := strings.LastIndex(it.name, "."); i >= 0 {
			sectionName, keyName = it.name[:i], it.name[i+1:]
		}
		section, err := cfg.NewSection(sectionName)
		if err != nil {
			return fmt.Errorf("failed to create section %q: %w", sectionName, err)
		}
		if _, err := section.NewKey(keyName, raw); err != nil {
			return fmt.Errorf("failed to write key %q: %w", keyName, err)
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	return atomicWriteFile(path, buf.Bytes())
}

// atomicWriteFile performs an atomic file write.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
