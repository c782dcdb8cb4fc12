// Package closet manages the ~/.attire/ directory hierarchy.
//
// Directory layout:
//
//	~/.attire/
//	    wardrobe.db              # SQLite database (items + saved outfits)
//	    settings.yaml            # optional rule-table and budget overrides
//	    photos/<category>/       # imported item photos
package closet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Closet represents the attire data directory.
type Closet struct {
	Dir string
}

// baseDir returns the ~/.attire directory.
func baseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, ".attire"), nil
}

// Open opens the closet directory, creating it on first use.
func Open() (*Closet, error) {
	dir, err := baseDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(dir, "photos"), 0o755); err != nil {
		return nil, fmt.Errorf("create closet: %w", err)
	}
	return &Closet{Dir: dir}, nil
}

// DBPath returns the path of the wardrobe database.
func (c *Closet) DBPath() string {
	return filepath.Join(c.Dir, "wardrobe.db")
}

// SettingsPath returns the path of the optional settings file.
func (c *Closet) SettingsPath() string {
	return filepath.Join(c.Dir, "settings.yaml")
}

// ImportPhoto copies a photo into photos/<category>/ under a uniquified
// name and returns its path relative to the closet directory. The source
// file is left in place.
func (c *Closet) ImportPhoto(src, category string) (string, error) {
	catDir := strings.ToLower(strings.ReplaceAll(category, " ", "_"))
	dir := filepath.Join(c.Dir, "photos", catDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create photo dir: %w", err)
	}

	base := filepath.Base(src)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	unique := fmt.Sprintf("%s_%s%s", name, uuid.NewString()[:8], ext)

	dst := filepath.Join(dir, unique)
	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("import photo: %w", err)
	}
	rel, err := filepath.Rel(c.Dir, dst)
	if err != nil {
		return "", fmt.Errorf("import photo: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// RemovePhoto deletes an imported photo by its closet-relative path.
// A missing file is not an error; the wardrobe row is the source of truth.
func (c *Closet) RemovePhoto(rel string) error {
	if rel == "" {
		return nil
	}
	path := filepath.Join(c.Dir, filepath.FromSlash(rel))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove photo: %w", err)
	}
	return nil
}

// PhotoPath resolves a closet-relative photo path to an absolute one.
func (c *Closet) PhotoPath(rel string) string {
	return filepath.Join(c.Dir, filepath.FromSlash(rel))
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
